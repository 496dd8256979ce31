package utils

import (
	"math/rand"
	"time"

	"gopkg.in/go-playground/validator.v9"
)

//SeededRand Seeded random
var SeededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

//Validate -_-
var Validate *validator.Validate

func init() {
	Validate = validator.New()
}

//GenerateCuponID generates new cupon ID
func GenerateCuponID() string {
	// cLLLLLLNNN, L = letter N = number
	b := make([]byte, 10)
	b[0] = 'c'

	for i := 1; i <= 6; i++ {
		b[i] = byte(SeededRand.Intn(26) + 65)
	}

	for i := 7; i <= 9; i++ {
		b[i] = byte(SeededRand.Intn(10) + 48)
	}

	return string(b)
}

//GenerateEmpresaID generates new empresa ID
func GenerateEmpresaID() string {
	// bLLLLLLNNN, L = letter N = number
	b := make([]byte, 10)
	b[0] = 'b'

	for i := 1; i <= 6; i++ {
		b[i] = byte(SeededRand.Intn(26) + 65)
	}

	for i := 7; i <= 9; i++ {
		b[i] = byte(SeededRand.Intn(10) + 48)
	}

	return string(b)
}

//GenerateCodigoCanje generates new redemption code
func GenerateCodigoCanje() string {
	// NNNNNNNN, N = number [0-9]
	b := make([]byte, 8)

	for i := 0; i <= 7; i++ {
		b[i] = byte(SeededRand.Intn(10) + 48)
	}

	return string(b)
}

//GenerateNotificationID generates new notification record ID
func GenerateNotificationID() string {
	// nLLLLLLLLLL, L = letter
	b := make([]byte, 11)
	b[0] = 'n'

	for i := 1; i <= 10; i++ {
		b[i] = byte(SeededRand.Intn(26) + 97)
	}

	return string(b)
}

// GetTimeNow Gets current time
func GetTimeNow() *time.Time {
	t := time.Now()

	return &t
}

//Today Gets current date in the format coupon validity dates use.
func Today() string {
	return GetTimeNow().Format("2006-01-02")
}
