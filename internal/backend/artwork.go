package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ArTrack-Service/artwalk/internal/model"
)

// Artworks 전체 작품 목록 조회
func (c *Client) Artworks(ctx context.Context, session string) ([]model.Artwork, error) {
	var artworks []model.Artwork
	if err := c.do(ctx, http.MethodGet, "/artwork", session, nil, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

// Artwork 작품 단건 조회
func (c *Client) Artwork(ctx context.Context, session string, id uint) (*model.Artwork, error) {
	var artwork model.Artwork
	path := fmt.Sprintf("/artwork/%d", id)
	if err := c.do(ctx, http.MethodGet, path, session, nil, &artwork); err != nil {
		return nil, err
	}
	return &artwork, nil
}

// favoriteRequest 즐겨찾기 등록/해제 요청
type favoriteRequest struct {
	ArtworkID uint `json:"artworkId"`
}

// Favorites 즐겨찾기한 작품 목록 조회
func (c *Client) Favorites(ctx context.Context, session string) ([]model.Artwork, error) {
	var artworks []model.Artwork
	if err := c.do(ctx, http.MethodGet, "/artwork/favorite", session, nil, &artworks); err != nil {
		return nil, err
	}
	return artworks, nil
}

// AddFavorite 작품 즐겨찾기 등록
func (c *Client) AddFavorite(ctx context.Context, session string, artworkID uint) error {
	return c.do(ctx, http.MethodPost, "/artwork/favorite", session, favoriteRequest{ArtworkID: artworkID}, nil)
}

// RemoveFavorite 작품 즐겨찾기 해제
func (c *Client) RemoveFavorite(ctx context.Context, session string, artworkID uint) error {
	return c.do(ctx, http.MethodDelete, "/artwork/favorite", session, favoriteRequest{ArtworkID: artworkID}, nil)
}
