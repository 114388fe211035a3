package message

import (
	"fmt"
	"math/rand/v2"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

const (
	MinLength = 1
	MaxLength = 8

	byteValues = 256
)

// Source is the random number source a Record is sampled from.
// IntN returns a value in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Record is one synthetic LIN-like frame: an identifier byte, a payload length and the payload.
type Record struct {
	Identifier uint8  `json:"identifier"`
	Length     uint8  `json:"length"`
	Payload    []byte `json:"payload"`
}

// NewSource returns a PCG backed source. A nil seed draws the PCG state from the
// runtime's auto-seeded generator, so successive runs differ.
func NewSource(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// Generate samples a record: identifier uniform in [0,255], length uniform in [1,8]
// and length payload bytes uniform in [0,255], in that order.
func Generate(src Source) Record {
	r := Record{
		Identifier: uint8(src.IntN(byteValues)),
		Length:     uint8(MinLength + src.IntN(MaxLength-MinLength+1)),
	}
	r.Payload = make([]byte, r.Length)
	for i := range r.Payload {
		r.Payload[i] = byte(src.IntN(byteValues))
	}
	return r
}

// Line generates a fresh record and returns its rendering.
func Line(src Source) string {
	r := Generate(src)
	return r.String()
}

func (r Record) Packet() []byte {
	packet := make([]byte, 0, 2+len(r.Payload))
	packet = append(packet, r.Identifier, r.Length)
	return append(packet, r.Payload...)
}

func (r Record) String() string {
	return Render(r.Packet())
}

func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("record cannot be nil")
	}

	n := int(r.Length)
	return validation.ValidateStruct(r,
		validation.Field(&r.Length,
			validation.Required.Error(fmt.Sprintf("length must be between %d and %d", MinLength, MaxLength)),
			validation.Max(uint8(MaxLength)).Error(fmt.Sprintf("length must be between %d and %d", MinLength, MaxLength)),
		),
		validation.Field(&r.Payload,
			validation.Required.Error("payload cannot be empty"),
			validation.Length(n, n).Error(fmt.Sprintf("payload must hold exactly %d bytes", n)),
		),
	)
}

// Render formats every byte as two uppercase hex digits separated by single spaces.
func Render(packet []byte) string {
	return strings.Join(lo.Map(packet, func(b byte, _ int) string {
		return fmt.Sprintf("%02X", b)
	}), " ")
}
