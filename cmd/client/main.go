// Command client is an interactive test program for the login service.
// It talks to the server over HTTP only; nothing here imports server code
// beyond the shared transport models.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-login-keeper/internal/adapter"
	"github.com/MKhiriev/go-login-keeper/internal/logger"
)

const requestTimeout = 10 * time.Second

type client struct {
	server adapter.ServerAdapter
	in     *bufio.Reader
	logger *logger.Logger
}

func main() {
	baseURL := flag.String("a", "http://localhost:5002", "base URL of the login service")
	flag.Parse()

	if env := os.Getenv("AUTH_BASE"); env != "" {
		*baseURL = env
	}

	log := logger.NewClientLogger("login-client")

	c := &client{
		server: adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
			BaseURL: *baseURL,
			Timeout: requestTimeout,
		}),
		in:     bufio.NewReader(os.Stdin),
		logger: log,
	}

	fmt.Println("========================================")
	fmt.Println(" Login Service Test Client")
	fmt.Println("========================================")
	fmt.Println("Server:", *baseURL)

	c.run()
}

func (c *client) run() {
	for {
		fmt.Println("\nMenu:")
		fmt.Println("1) Create User")
		fmt.Println("2) Login")
		fmt.Println("3) Verify Token (/me)")
		fmt.Println("4) Exit")

		switch c.prompt("\nChoose an option: ") {
		case "1":
			c.createUser()
		case "2":
			c.login()
		case "3":
			c.verifyToken()
		case "4":
			fmt.Println("\nGoodbye!")
			return
		default:
			fmt.Println("\nInvalid choice. Please enter 1, 2, 3, or 4.")
		}
	}
}

func (c *client) createUser() {
	fmt.Println("\n-------------------------------")
	fmt.Println(" CREATE USER  (POST /users)")
	fmt.Println("-------------------------------")

	userID := c.promptNonEmpty("Enter new user_id: ")
	password := c.promptNonEmpty("Enter password: ")
	displayName := c.promptNonEmpty("Enter display_name: ")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	user, err := c.server.CreateUser(ctx, userID, password, displayName)
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", userID).Msg("create user failed")
		fmt.Println("\nCreate user failed:", err)
		return
	}

	fmt.Printf("\nUser created: %s (%s)\n", user.UserID, user.DisplayName)
}

func (c *client) login() {
	fmt.Println("\n-------------------------------")
	fmt.Println(" LOGIN  (POST /login)")
	fmt.Println("-------------------------------")

	userID := c.promptNonEmpty("Enter user_id: ")
	password := c.promptNonEmpty("Enter password: ")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := c.server.Login(ctx, userID, password)
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", userID).Msg("login failed")
		fmt.Println("\nLogin failed:", err)
		return
	}

	fmt.Println("\nLogin successful. Token received and stored.")
	fmt.Println("Token:", resp.Token)
}

func (c *client) verifyToken() {
	if c.server.Token() == "" {
		fmt.Println("\nNo token yet. Please login first.")
		return
	}

	fmt.Println("\n-------------------------------")
	fmt.Println(" ME  (GET /me)")
	fmt.Println("-------------------------------")

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	user, err := c.server.Me(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("token verification failed")
		fmt.Println("\nToken verification failed:", err)
		return
	}

	fmt.Printf("\nToken is valid. You are %s (%s).\n", user.UserID, user.DisplayName)
}

func (c *client) prompt(label string) string {
	fmt.Print(label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *client) promptNonEmpty(label string) string {
	for {
		if s := c.prompt(label); s != "" {
			return s
		}
		fmt.Println("Value cannot be blank.")
	}
}
