// Command hash-generator prints bcrypt hashes for the given passwords, for
// seeding users directly into the database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yasirshahid/contactManager-server/internal/config"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", config.DefaultBcryptCost, "bcrypt work factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	hasher, err := auth.NewBcryptHasher(*cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, password := range flag.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing password: %v\n", err)
			continue
		}
		fmt.Println(hash)
	}
}
