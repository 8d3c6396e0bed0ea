package main

import (
	"context"
	"fmt"
	"io"
	"hotelchat/backend/internal/chat"
	"hotelchat/backend/internal/config"
	"hotelchat/backend/internal/hotel"
	"hotelchat/backend/internal/models"
	"hotelchat/backend/internal/storage"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/redis/go-redis/v9"
)

const usage = `Usage: admin <command> [args]

Commands:
  promote <email>                        grant the operator role
  demote <email>                         revoke the operator role
  rooms                                  list chat rooms, most recent activity first
  show-room <place_id> <email>           print the room of a requester's offer
  operators                              list staff accounts
  close-room <room_id>                   delete a chat room with its messages
  add-hotel <place_id> <name> <address>  add a hotel to the catalog
  watch                                  print room events as they are published (needs REDIS_ADDR)`

// adminPrincipal is the operator identity CLI actions are performed as.
var adminPrincipal = &models.User{Username: "admin-cli", Role: models.RoleOperator}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	db, err := storage.Open(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	// the client dials lazily; only close-room and watch touch Redis
	storageSvc := storage.NewStorageService(db, rdb)
	chatSvc := chat.NewService(storageSvc, nil)
	ctx := context.Background()

	command := os.Args[1]
	switch command {
	case "promote", "demote":
		if len(os.Args) != 3 {
			fmt.Printf("Usage: admin %s <email>\n", command)
			os.Exit(1)
		}
		role := models.RoleOperator
		if command == "demote" {
			role = models.RoleUser
		}
		if err := setRole(ctx, storageSvc, os.Args[2], role); err != nil {
			log.Fatalf("Error changing role: %v", err)
		}
		fmt.Printf("User %s is now %s.\n", os.Args[2], role)
	case "rooms":
		if err := listRooms(ctx, storageSvc); err != nil {
			log.Fatalf("Error listing rooms: %v", err)
		}
	case "show-room":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin show-room <place_id> <email>")
			os.Exit(1)
		}
		if err := showRoom(ctx, storageSvc, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error showing room: %v", err)
		}
	case "operators":
		if err := listOperators(ctx, storageSvc, os.Stdout); err != nil {
			log.Fatalf("Error listing operators: %v", err)
		}
	case "close-room":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin close-room <room_id>")
			os.Exit(1)
		}
		if err := closeRoom(ctx, chatSvc, os.Args[2]); err != nil {
			log.Fatalf("Error closing room: %v", err)
		}
		fmt.Printf("Chat room %s closed.\n", os.Args[2])
	case "add-hotel":
		if len(os.Args) < 5 {
			fmt.Println("Usage: admin add-hotel <place_id> <name> <address>")
			os.Exit(1)
		}
		h, err := hotel.NewService(storageSvc).Create(ctx, hotel.CreateInput{
			PlaceID:          os.Args[2],
			Name:             os.Args[3],
			FormattedAddress: strings.Join(os.Args[4:], " "),
		})
		if err != nil {
			log.Fatalf("Error adding hotel: %v", err)
		}
		fmt.Printf("Hotel %s (%s) added with id %d.\n", h.Name, h.PlaceID, h.ID)
	case "watch":
		watchCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := storageSvc.SubscribeRoomEvents(watchCtx, printEvent); err != nil {
			log.Fatalf("Error watching events: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		fmt.Println(usage)
		os.Exit(1)
	}
}

func setRole(ctx context.Context, s storage.Storage, email, role string) error {
	user, err := s.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return err
	}
	return s.UpdateUserRole(ctx, user.ID, role)
}

func listOperators(ctx context.Context, s storage.Storage, out io.Writer) error {
	users, err := s.ListUsersByRole(ctx, models.RoleOperator)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tUSERNAME\tLAST LOGIN")
	for _, u := range users {
		last := "never"
		if u.LastLoginAt != nil {
			last = u.LastLoginAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Email, u.Username, last)
	}
	return w.Flush()
}

// closeRoom deletes the room through the chat service, which publishes room_closed.
func closeRoom(ctx context.Context, svc *chat.Service, roomID string) error {
	return svc.CloseRoom(ctx, adminPrincipal, roomID)
}

func listRooms(ctx context.Context, s storage.Storage) error {
	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROOM\tHOTEL\tPARTICIPANTS\tUPDATED\tLAST MESSAGE")
	for _, r := range rooms {
		last := ""
		if len(r.Messages) > 0 {
			last = r.Messages[0].Content
			if len([]rune(last)) > 40 {
				last = string([]rune(last)[:40]) + "…"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.ID, r.Hotel.Name, len(r.Participants), r.UpdatedAt.Format("2006-01-02 15:04"), last)
	}
	return w.Flush()
}

func showRoom(ctx context.Context, s storage.Storage, placeID, email string) error {
	room, err := s.GetRoom(ctx, chat.RoomKey(placeID, strings.ToLower(email)))
	if err != nil {
		return err
	}

	fmt.Printf("Room %s (%s)\n", room.ID, room.Hotel.Name)
	for _, p := range room.Participants {
		fmt.Printf("  participant %d %s [%s]\n", p.ID, p.Email, p.Role)
	}
	for _, m := range room.Messages {
		fmt.Printf("  %s %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04:05"), m.Sender.Email, m.Content)
	}
	return nil
}

func printEvent(e models.RoomEvent) {
	line := fmt.Sprintf("%s %-15s %s", e.At.Format("2006-01-02 15:04:05"), e.Type, e.RoomID)
	if e.MessageID != "" {
		line += fmt.Sprintf(" message=%s sender=%d", e.MessageID, e.SenderID)
	}
	fmt.Println(line)
}
