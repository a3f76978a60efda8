package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	characterrepo "github.com/Treylong00/DND-Companion/internal/repositories/character"
)

// Rewrites character records saved in older shapes (skills as a list of
// names, no ability_modifiers, blank equipment lines) in the current shape.
// Reads already upgrade in memory; this makes the stored documents match.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for legacy character records...")

	iter := client.Scan(ctx, 0, characterrepo.Key("*"), 0).Iterator()

	upgrades := make(map[string][]byte)
	var unreadable []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if key == characterrepo.IndexKey {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		c, upgraded, err := characterrepo.Decode(data)
		if err != nil {
			fmt.Printf("✗ Unreadable record %s: %v\n", key, err)
			unreadable = append(unreadable, key)
			continue
		}
		if !upgraded {
			continue
		}

		encoded, err := characterrepo.Encode(c)
		if err != nil {
			fmt.Printf("✗ Cannot encode %s: %v\n", key, err)
			continue
		}
		fmt.Printf("↑ Legacy shape in %s (%s)\n", key, c.Name)
		upgrades[key] = encoded
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records, %d need upgrading, %d unreadable\n", checkedCount, len(upgrades), len(unreadable))

	if len(unreadable) > 0 {
		fmt.Println("\nUnreadable records are left untouched:")
		for _, key := range unreadable {
			fmt.Printf("  - %s\n", key)
		}
	}

	if len(upgrades) == 0 {
		fmt.Println("Nothing to upgrade!")
		return
	}

	fmt.Print("\nDo you want to REWRITE these records in the current format? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for key, data := range upgrades {
		if err := client.Set(ctx, key, data, 0).Err(); err != nil {
			fmt.Printf("Failed to rewrite %s: %v\n", key, err)
		} else {
			fmt.Printf("Rewrote %s\n", key)
		}
	}
	fmt.Println("\nUpgrade complete!")
}
