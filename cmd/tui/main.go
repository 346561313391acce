package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/coordinator/internal/client"
	http_common "github.com/humanbelnik/coordinator/internal/delivery/http/common"
)

const requestTimeout = 30 * time.Second

type session struct {
	api     *client.Client
	scanner *bufio.Scanner
	userID  string
	room    string
	role    string
	stop    context.CancelFunc
}

func (s *session) ask(prompt string) string {
	fmt.Print(prompt)
	if !s.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}

func (s *session) askList(prompt string) []string {
	items := []string{}
	for _, item := range strings.Split(s.ask(prompt), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (s *session) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func (s *session) createRoom() error {
	ctx, cancel := s.ctx()
	defer cancel()

	resp, err := s.api.CreateRoom(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Room created. Code: %s\n", resp.RoomCode)
	return s.enter(resp.RoomCode, resp.Role)
}

func (s *session) joinRoom() error {
	code := s.ask("Room code: ")
	if code == "" {
		return fmt.Errorf("room code is required")
	}

	ctx, cancel := s.ctx()
	defer cancel()

	resp, err := s.api.JoinRoom(ctx, code)
	if err != nil {
		return err
	}
	fmt.Printf("Joined room %s\n", resp.RoomCode)
	return s.enter(resp.RoomCode, resp.Role)
}

func (s *session) enter(code string, role string) error {
	s.leave()
	s.room, s.role = code, role

	ctx, cancel := context.WithCancel(context.Background())
	updates, err := s.api.Watch(ctx, code)
	if err != nil {
		cancel()
		return fmt.Errorf("lobby connection failed: %w", err)
	}
	s.stop = cancel

	go func() {
		for up := range updates {
			if up.Closed {
				fmt.Printf("\n[lobby] room %s was closed\n", up.Lobby.RoomCode)
				continue
			}
			fmt.Printf("\n[lobby] %s: %d partner(s) ready %v\n",
				up.Lobby.RoomCode, up.Lobby.PartnersConnected, up.Lobby.PartnerIDs)
		}
	}()
	return nil
}

func (s *session) leave() {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.room, s.role = "", ""
}

func (s *session) readSubmission() http_common.SubmissionDTO {
	role := s.ask("Role (dom/sub/switch): ")
	intensity := s.ask("Intensity (casual/adventurous/weird/demon): ")
	return http_common.SubmissionDTO{
		Role:      role,
		Intensity: &intensity,
		Inventory: s.askList("Toys, comma separated: "),
		Outfit:    s.askList("Outfits, comma separated: "),
		Kinks:     s.askList("Kinks, comma separated: "),
	}
}

func (s *session) sync() error {
	if s.room == "" {
		return fmt.Errorf("create or join a room first")
	}
	sub := s.readSubmission()

	ctx, cancel := s.ctx()
	defer cancel()

	resp, err := s.api.Sync(ctx, s.room, s.userID, sub)
	if err != nil {
		return err
	}
	fmt.Printf("Synced. Partners ready: %d\n", resp.PartnersReady)
	return nil
}

func (s *session) questionnaire() error {
	if s.room == "" {
		return fmt.Errorf("create or join a room first")
	}
	theme := s.ask("Theme: ")
	notes := s.ask("Notes: ")
	q := http_common.QuestionnaireDTO{
		Theme:       &theme,
		Preferences: s.askList("Preferences, comma separated: "),
		Notes:       &notes,
	}

	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.api.SaveQuestionnaire(ctx, s.room, s.userID, q); err != nil {
		return err
	}
	fmt.Println("Questionnaire saved")
	return nil
}

func (s *session) generate(solo bool) error {
	ctx, cancel := s.ctx()
	defer cancel()

	var (
		sceneIntensity string
		roles          []string
		toys           []string
		kinks          []string
		outfits        []string
		target         string
	)
	if solo {
		sub := s.readSubmission()
		resp, err := s.api.GenerateSolo(ctx, sub)
		if err != nil {
			return err
		}
		sceneIntensity, roles, target = resp.Intensity, resp.Roles, resp.OllamaModel+" @ "+resp.OllamaURL
		toys, kinks, outfits = resp.MergedData.Toys, resp.MergedData.Kinks, resp.MergedData.Outfits
	} else {
		if s.room == "" {
			return fmt.Errorf("create or join a room first")
		}
		resp, err := s.api.Generate(ctx, s.room)
		if err != nil {
			return err
		}
		sceneIntensity, roles, target = resp.Intensity, resp.Roles, resp.OllamaModel+" @ "+resp.OllamaURL
		toys, kinks, outfits = resp.MergedData.Toys, resp.MergedData.Kinks, resp.MergedData.Outfits
	}

	fmt.Println("\nMerged scene")
	fmt.Printf("  Intensity: %s\n", sceneIntensity)
	fmt.Printf("  Roles:     %s\n", strings.Join(roles, ", "))
	fmt.Printf("  Toys:      %s\n", strings.Join(toys, ", "))
	fmt.Printf("  Kinks:     %s\n", strings.Join(kinks, ", "))
	fmt.Printf("  Outfits:   %s\n", strings.Join(outfits, ", "))
	fmt.Printf("  Generator: %s\n", target)
	return nil
}

func (s *session) closeRoom() error {
	if s.room == "" {
		return fmt.Errorf("create or join a room first")
	}

	ctx, cancel := s.ctx()
	defer cancel()

	if err := s.api.CloseRoom(ctx, s.room); err != nil {
		return err
	}
	s.leave()
	fmt.Println("Room closed")
	return nil
}

func main() {
	baseURL := flag.String("url", envOr("COORDINATOR_URL", "http://localhost:8000"), "coordinator base URL")
	flag.Parse()

	s := &session{
		api:     client.New(*baseURL),
		scanner: bufio.NewScanner(os.Stdin),
		userID:  uuid.NewString(),
	}
	defer s.leave()

	for {
		fmt.Println("\n=== Coordinator Console Client ===")
		if s.room != "" {
			fmt.Printf("Room %s as %s, user %s\n", s.room, s.role, s.userID)
		}
		fmt.Println("1. Create room")
		fmt.Println("2. Join room")
		fmt.Println("3. Sync preferences")
		fmt.Println("4. Save questionnaire")
		fmt.Println("5. Generate room scene")
		fmt.Println("6. Generate solo scene")
		fmt.Println("7. Close room")
		fmt.Println("0. Exit")
		fmt.Print("Choose: ")

		if !s.scanner.Scan() {
			return
		}

		var err error
		switch strings.TrimSpace(s.scanner.Text()) {
		case "1":
			err = s.createRoom()
		case "2":
			err = s.joinRoom()
		case "3":
			err = s.sync()
		case "4":
			err = s.questionnaire()
		case "5":
			err = s.generate(false)
		case "6":
			err = s.generate(true)
		case "7":
			err = s.closeRoom()
		case "0":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown choice")
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
