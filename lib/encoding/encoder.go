// Package encoding turns icons into opaque URL-safe references and back.
//
// A reference carries the msgpack form of the icon produced by the codec
// package. Custom icons embed raw SVG markup, so references are always
// authenticated: a client cannot forge a reference that renders markup the
// server never issued.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/pthm/icondata"
	"github.com/pthm/icondata/codec"
)

var (
	ErrInvalidFormat    = errors.New("encoding: invalid reference format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
)

// Encoder encodes icon references. It supports two modes:
//   - Signed (default): base64 + HMAC, visible but tamper-proof
//   - Encrypted: AES-256-GCM, fully opaque
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode returns a reference to icon. Sensitive references are encrypted,
// others are signed.
func (e *Encoder) Encode(icon icondata.Icon, sensitive bool) (string, error) {
	if icon == nil {
		return "", errors.New("encoding: nil icon")
	}
	packed, err := codec.MarshalMsgpack(icon)
	if err != nil {
		return "", err
	}
	if sensitive {
		return e.encrypt(packed)
	}
	return e.sign(packed), nil
}

// Decode returns the icon of a reference produced by Encode with the same
// key and mode.
func (e *Encoder) Decode(ref string, sensitive bool) (icondata.Icon, error) {
	var packed []byte
	var err error
	if sensitive {
		packed, err = e.decrypt(ref)
	} else {
		packed, err = e.verify(ref)
	}
	if err != nil {
		return nil, err
	}

	icon, err := codec.UnmarshalMsgpack(packed)
	if err != nil {
		return nil, err
	}
	if icon == nil {
		return nil, ErrInvalidFormat
	}
	return icon, nil
}

// sign produces base64(data) "." base64(mac).
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
	return b64 + "." + sig
}

func (e *Encoder) verify(ref string) ([]byte, error) {
	payload, sigPart, ok := strings.Cut(ref, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	if !hmac.Equal(sig, mac.Sum(nil)[:16]) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (e *Encoder) encrypt(data []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := e.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (e *Encoder) decrypt(ref string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(ref)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	if len(sealed) < e.gcm.NonceSize() {
		return nil, ErrInvalidFormat
	}

	nonce, ciphertext := sealed[:e.gcm.NonceSize()], sealed[e.gcm.NonceSize():]
	data, err := e.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
