//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cyprus-transfer/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	group := flag.String("group", "reservation-notification-workers", "Consumer group of the notification worker")
	email := flag.String("email", "", "Recipient of the test confirmation")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое бронирование Ларнака -> Айя-Напа
	code := "CT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	event := domain.ReservationCreatedEvent{
		EventID:        uuid.New(),
		ReservationID:  0,
		Code:           code,
		CustomerName:   "Test Customer",
		CustomerEmail:  *email,
		PickupName:     "Larnaca International Airport",
		DropoffName:    "Ayia Napa",
		VehicleName:    "Mercedes Vito",
		TransferType:   domain.TransferTypePrivate,
		TransferDate:   time.Now().Add(72 * time.Hour).Truncate(time.Hour),
		PassengerCount: 3,
		TotalPrice:     65,
		Currency:       "EUR",
		OccurredAt:     time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamReservationCreated,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamReservationCreated)
	fmt.Printf("   Message ID: %s\n", id)
	fmt.Printf("   Code: %s\n", code)

	fmt.Printf("\nWaiting for group %q to acknowledge...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: the worker did not acknowledge the event")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamReservationCreated).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				if g.LastDeliveredID >= id && g.Pending == 0 {
					fmt.Println("Event acknowledged by the worker")
					return
				}
			}
		}
	}
}
