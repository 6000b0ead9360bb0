// Package share 공유 허용된 코스의 공유 링크 토큰과 QR 코드를 만든다.
package share

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 공유 토큰 클레임
type Claims struct {
	CourseID uint `json:"course_id"`
	jwt.RegisteredClaims
}

// GenerateToken 코스 공유 토큰 생성 (HS256)
func GenerateToken(courseID uint, secretKey string, expireHours int) (string, error) {
	claims := Claims{
		CourseID: courseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken 공유 토큰 검증
func ValidateToken(tokenString, secretKey string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
