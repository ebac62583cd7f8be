// Package person provides a sample key type for the hash table: a name and
// age pair compared by value.
package person

import (
	"fmt"
	"unicode/utf16"
)

// Person must not be modified while it is stored as a key.
type Person struct {
	Name string
	Age  int
}

func New(name string, age int) Person {
	return Person{Name: name, Age: age}
}

// HashCode combines the name and age with multiplier 31 in 32-bit
// arithmetic, so values match across platforms.
func (p Person) HashCode() int32 {
	h := int32(1)
	h = 31*h + stringHash(p.Name)
	h = 31*h + int32(p.Age)
	return h
}

func (p Person) Equals(other Person) bool {
	return p.Age == other.Age && p.Name == other.Name
}

func (p Person) String() string {
	return fmt.Sprintf("Person{name='%s', age=%d}", p.Name, p.Age)
}

// stringHash is the polynomial hash over UTF-16 code units.
func stringHash(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return h
}
