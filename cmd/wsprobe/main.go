// Command wsprobe exercises the notification WebSocket endpoint. It logs in,
// opens one or more notification streams, and prints every event received.
// Useful for smoke testing real-time delivery against a running server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

var received int64

func main() {
	host := flag.String("host", "localhost:8080", "API server host")
	email := flag.String("email", "admin@example.com", "Test user email")
	password := flag.String("password", "Password123!", "Test user password")
	clients := flag.Int("clients", 1, "Number of concurrent streams")
	duration := flag.Duration("duration", 30*time.Second, "How long to listen")
	flag.Parse()

	session, err := login(*host, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	log.Printf("logged in, opening %d stream(s) against %s", *clients, *host)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < *clients; i++ {
		wg.Add(1)
		go listen(*host, session, i, stop, &wg)
		time.Sleep(50 * time.Millisecond)
	}

	select {
	case <-time.After(*duration):
		log.Println("listen duration reached")
	case <-interrupt:
		log.Println("interrupted")
	}

	close(stop)
	wg.Wait()
	log.Printf("done, received %d event(s)", atomic.LoadInt64(&received))
}

// login authenticates and returns the session cookie value.
func login(host, email, password string) (string, error) {
	loginURL := fmt.Sprintf("http://%s/api/auth/login", host)
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(loginURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "jwt" {
			return cookie.Value, nil
		}
	}
	return "", fmt.Errorf("login response did not set a session cookie")
}

func listen(host, session string, id int, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	u := url.URL{Scheme: "ws", Host: host, Path: "/api/ws/"}
	header := http.Header{}
	header.Set("Cookie", "jwt="+session)

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		log.Printf("client %d: dial failed: %v", id, err)
		return
	}
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	defer func() { _ = conn.Close() }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				return
			}
			atomic.AddInt64(&received, 1)
			log.Printf("client %d: %s", id, message)
		}
	}()

	select {
	case <-stop:
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	case <-done:
	}
}
