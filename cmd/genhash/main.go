package main

import (
	"fmt"
	"log"
	"os"

	"creator-kita.backend/pkg/crypto"
)

// Prints a bcrypt hash for seeding admin accounts.
func main() {
	password := "AdminCreatorKita2026!"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
