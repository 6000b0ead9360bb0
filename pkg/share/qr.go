package share

import (
	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG 공유 링크를 QR 코드 PNG로 인코딩
func QRPNG(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(url, qrcode.Medium, size)
}
