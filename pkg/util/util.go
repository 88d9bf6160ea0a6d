package util

import (
	"io"
	"math/rand"
	"time"

	"github.com/xuning888/wstr/logger"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

func RandStr(length int) string {
	nR := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[nR.Intn(len(letters))]
	}
	return string(b)
}

func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		logger.ErrorF("close failed with error: %v", err)
	}
}
