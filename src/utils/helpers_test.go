package utils

import (
	"crypto/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCardCode(t *testing.T) {
	pattern := regexp.MustCompile(`^TAYLOR-\d{4}$`)
	for i := 0; i < 20; i++ {
		code := GenerateCardCode("Taylor Swift")
		assert.Regexp(t, pattern, code)
	}

	assert.Regexp(t, `^THE-\d{4}$`, GenerateCardCode("The Weeknd"))
	assert.Regexp(t, `^FAN-\d{4}$`, GenerateCardCode(""))
}

func TestEncryptDecryptRoundtrip(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	assert.Nil(t, err)

	message := `{"fanCardId":3,"cardCode":"TAYLOR-4821"}`
	enc, err := EncryptMessage(key, message)
	assert.Nil(t, err)
	assert.NotEqual(t, message, enc)

	dec, err := DecryptMessage(key, enc)
	assert.Nil(t, err)
	assert.Equal(t, message, *dec)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	key := make([]byte, 32)
	rand.Read(key)
	enc, err := EncryptMessage(key, "payload")
	assert.Nil(t, err)

	other := make([]byte, 32)
	rand.Read(other)
	_, err = DecryptMessage(other, enc)
	assert.NotNil(t, err)
}
