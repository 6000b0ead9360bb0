package share

import (
	"testing"
)

// TestTokenRoundTrip 발급한 토큰이 검증되고 코스 id가 복원된다
func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "test-secret", 1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.CourseID != 42 {
		t.Errorf("Expected course id 42, got %d", claims.CourseID)
	}
}

// TestTokenWrongSecret 다른 키로 서명된 토큰은 거부된다
func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "test-secret", 1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); err == nil {
		t.Error("Expected validation failure for wrong secret")
	}
}

// TestTokenExpired 만료된 토큰은 거부된다
func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "test-secret", -1)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Error("Expected validation failure for expired token")
	}
}

// TestTokenGarbage 임의 문자열은 거부된다
func TestTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "test-secret"); err == nil {
		t.Error("Expected validation failure for garbage input")
	}
}

// TestQRPNG 공유 URL로 PNG가 생성된다
func TestQRPNG(t *testing.T) {
	png, err := QRPNG("https://example.com/course/shared/abc", 256)
	if err != nil {
		t.Fatalf("QRPNG failed: %v", err)
	}
	if len(png) == 0 {
		t.Error("Expected non-empty PNG")
	}
	// PNG 시그니처 확인
	if len(png) < 8 || png[0] != 0x89 || string(png[1:4]) != "PNG" {
		t.Error("Expected PNG magic bytes")
	}
}
