package datagen_test

import (
	"fmt"
	"time"

	"github.com/saylorsolutions/testkit/datagen"
)

func ExampleGenerator_PhoneNumber() {
	gen := datagen.New(datagen.WithSeed(1))
	a := datagen.Must(gen.PhoneNumber("US"))
	b := datagen.Must(datagen.New(datagen.WithSeed(1)).PhoneNumber("US"))
	fmt.Println(len(a), a == b)
	// Output: 12 true
}

func ExampleGenerator_PhoneNumberFromPattern() {
	gen := datagen.New(datagen.WithSeed(1))
	order := datagen.Must(gen.PhoneNumberFromPattern(`ORD-\d{6}`))
	fmt.Println(order[:4], len(order))
	// Output: ORD- 10
}

func ExampleMaxDays() {
	fmt.Println(datagen.MaxDays(time.February, 2024), datagen.MaxDays(time.February, 1900))
	// Output: 29 28
}

func ExampleLuhnCheckDigit() {
	digit, err := datagen.LuhnCheckDigit("7992739871")
	if err != nil {
		panic(err)
	}
	fmt.Println(digit)
	// Output: 3
}

func ExampleFormatComplex() {
	fmt.Println(datagen.FormatComplex(complex(3, 4.5)))
	// Output: 3.00 + 4.50i
}
