// Command hash-password prints a bcrypt hash suitable for
// AUTH_ADMIN_PASSWORD_HASH.
//
// Usage:
//
//	hash-password --password=secret
//	echo -n secret | hash-password
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/auth"
)

func main() {
	password := flag.String("password", "", "password to hash (read from stdin when empty)")
	cost := flag.Int("cost", 0, "bcrypt cost (0 = default)")
	flag.Parse()

	if *password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "Usage: hash-password --password=secret")
			os.Exit(1)
		}
		*password = strings.TrimRight(line, "\r\n")
	}
	if *password == "" {
		log.Fatal("password must not be empty")
	}

	hash, err := auth.HashPassword(*password, *cost)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
