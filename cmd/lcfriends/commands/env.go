package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lcfriends/lcfriends/internal/aggregate"
	"github.com/lcfriends/lcfriends/internal/config"
	"github.com/lcfriends/lcfriends/internal/friends"
	"github.com/lcfriends/lcfriends/internal/printer"
	"github.com/lcfriends/lcfriends/pkg/leetcode"
)

// friendListKey is the single logical key the friend list lives under.
const friendListKey = "friends"

// env bundles the wired-up collaborators every command needs.
type env struct {
	cfg        *config.Config
	kv         *friends.RedisKV
	store      *friends.Store
	client     *leetcode.Client
	aggregator *aggregate.Aggregator
}

// setupEnv loads configuration, connects to Redis, and wires the store and
// remote client. The caller must call close() when done.
func setupEnv(ctx context.Context) (*env, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, printer.Error(
			"Invalid configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check %s for mistakes", configPath)},
		)
	}

	kv, err := friends.NewRedisKV(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Namespace)
	if err != nil {
		return nil, nil, printer.Error("Failed to create Redis client", err.Error(), nil)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := kv.Ping(pingCtx); err != nil {
		kv.Close()
		return nil, nil, printer.Error(
			fmt.Sprintf("Cannot reach Redis at %s", cfg.Redis.Addr),
			err.Error(),
			[]string{
				"Start a local Redis server (e.g. 'docker run -p 6379:6379 redis')",
				"Point redis.addr in the config (or LCFRIENDS_REDIS_ADDR) at a running server",
			},
		)
	}

	client := leetcode.NewClient(cfg.Endpoint)
	e := &env{
		cfg:        cfg,
		kv:         kv,
		store:      friends.NewStore(kv, client, friendListKey),
		client:     client,
		aggregator: aggregate.New(client, cfg.SubmissionLimit),
	}
	return e, func() { kv.Close() }, nil
}

// confirmPrompt asks a yes/no question on the given reader and returns true
// only for an explicit yes.
func confirmPrompt(in io.Reader, prompt string) bool {
	printer.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
