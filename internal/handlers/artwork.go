package handlers

import (
	"strconv"
	"strings"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/middleware"
	"github.com/ArTrack-Service/artwalk/internal/model"
	"github.com/gofiber/fiber/v2"
)

type ArtworkHandler struct {
	backend *backend.Client
}

func NewArtworkHandler(client *backend.Client) *ArtworkHandler {
	return &ArtworkHandler{backend: client}
}

func SetupArtworkRoutes(router fiber.Router, client *backend.Client) {
	h := NewArtworkHandler(client)

	router.Get("/", h.ListArtworks)
	router.Get("/favorite", h.ListFavorites)
	router.Post("/favorite", h.AddFavorite)
	router.Delete("/favorite", h.RemoveFavorite)
	router.Get("/:id", h.GetArtwork)
}

// ListArtworks godoc
// @Summary List artworks
// @Description 전체 작품 목록. type(카테고리), q(이름 검색)로 필터링한다.
// @Tags artwork
// @Accept json
// @Produce json
// @Param type query string false "Category (publicArt/gallery/sculpture/statue)"
// @Param q query string false "Name search keyword"
// @Success 200 {array} model.Artwork
// @Router /artwork [get]
func (h *ArtworkHandler) ListArtworks(c *fiber.Ctx) error {
	session := middleware.SessionFrom(c)

	artworks, err := h.backend.Artworks(c.UserContext(), session)
	if err != nil {
		return err
	}

	category := model.Category(c.Query("type"))
	keyword := strings.TrimSpace(c.Query("q"))

	if category == "" && keyword == "" {
		return c.JSON(artworks)
	}

	filtered := make([]model.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if category != "" && a.Category != category {
			continue
		}
		if keyword != "" && !strings.Contains(a.Name, keyword) {
			continue
		}
		filtered = append(filtered, a)
	}

	return c.JSON(filtered)
}

// GetArtwork godoc
// @Summary Get artwork by ID
// @Tags artwork
// @Accept json
// @Produce json
// @Param id path int true "Artwork ID"
// @Success 200 {object} model.Artwork
// @Router /artwork/{id} [get]
func (h *ArtworkHandler) GetArtwork(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "유효하지 않은 작품 id"})
	}

	artwork, err := h.backend.Artwork(c.UserContext(), middleware.SessionFrom(c), uint(id))
	if err != nil {
		return err
	}

	return c.JSON(artwork)
}

// ListFavorites godoc
// @Summary List favorite artworks
// @Tags artwork
// @Accept json
// @Produce json
// @Success 200 {array} model.Artwork
// @Router /artwork/favorite [get]
func (h *ArtworkHandler) ListFavorites(c *fiber.Ctx) error {
	artworks, err := h.backend.Favorites(c.UserContext(), middleware.SessionFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(artworks)
}

type favoriteRequest struct {
	ArtworkID uint `json:"artworkId"`
}

// AddFavorite godoc
// @Summary Add artwork to favorites
// @Tags artwork
// @Accept json
// @Produce json
// @Param request body favoriteRequest true "Artwork ID"
// @Success 201 {object} map[string]string
// @Router /artwork/favorite [post]
func (h *ArtworkHandler) AddFavorite(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.backend.AddFavorite(c.UserContext(), middleware.SessionFrom(c), req.ArtworkID); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "즐겨찾기에 추가되었습니다"})
}

// RemoveFavorite godoc
// @Summary Remove artwork from favorites
// @Tags artwork
// @Accept json
// @Produce json
// @Param request body favoriteRequest true "Artwork ID"
// @Success 200 {object} map[string]string
// @Router /artwork/favorite [delete]
func (h *ArtworkHandler) RemoveFavorite(c *fiber.Ctx) error {
	var req favoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.backend.RemoveFavorite(c.UserContext(), middleware.SessionFrom(c), req.ArtworkID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "즐겨찾기에서 제거되었습니다"})
}
