package main

import (
	"context"
	"log"

	"github.com/hudsonrene96-debug/todo-list-backend/auth"
	"github.com/hudsonrene96-debug/todo-list-backend/confs"
	"github.com/hudsonrene96-debug/todo-list-backend/server"
	"github.com/hudsonrene96-debug/todo-list-backend/storage"
)

func main() {
	cfg, err := confs.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		users storage.UserRepository
		tasks storage.TaskRepository
	)
	if cfg.MongoURI != "" {
		ctx := context.Background()
		client, err := storage.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo: %v", err)
		}
		db := client.Database(cfg.DBName)
		mongoUsers := storage.NewMongoUsers(db)
		if err := mongoUsers.EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo: %v", err)
		}
		users = mongoUsers
		tasks = storage.NewMongoTasks(db)
		log.Println("✅ Connected to MongoDB!")
	} else {
		// no MONGO_URI: run on the in-memory store, data is lost on restart
		mem := storage.NewMemory()
		users = mem
		tasks = mem.Tasks()
		log.Println("⚠️  MONGO_URI not set, using in-memory store")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	srv := server.New(cfg, users, tasks, tokens)

	log.Printf("🚀 Server running on :%s\n", cfg.Port)
	log.Fatal(srv.Start())
}
