package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"path/filepath"

	"labStore/models"

	"github.com/redis/go-redis/v9"
)

// CartStorage holds one serialized cart per key. Implementations only move
// bytes, the cart format lives in CartRepository.
type CartStorage interface {
	Read(key string) (data []byte, found bool, err error)
	Write(key string, data []byte) (err error)
}

type RedisCartStorage struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisCartStorage(redis_conn *redis.Client, _ctx context.Context) (CartStorage, error) {
	if redis_conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := redis_conn.Ping(_ctx).Err()
	if err != nil {
		return nil, err
	}
	return &RedisCartStorage{
		rdb: redis_conn,
		ctx: _ctx,
	}, nil
}

func (s *RedisCartStorage) Read(key string) (data []byte, found bool, err error) {
	val, e := s.rdb.Get(s.ctx, key).Bytes()
	if e != nil {
		if e == redis.Nil {
			return
		}
		log.Printf("RedisCartStorage.Read: %v", e)
		err = models.ErrServerError
		return
	}
	data = val
	found = true
	return
}

func (s *RedisCartStorage) Write(key string, data []byte) (err error) {
	err = s.rdb.Set(s.ctx, key, data, 0).Err()
	if err != nil {
		log.Printf("RedisCartStorage.Write: %v", err)
		err = models.ErrServerError
	}
	return
}

type FileCartStorage struct {
	dir string
}

func NewFileCartStorage(dir string) (CartStorage, error) {
	if dir == "" {
		return nil, errors.New("dir must be non-empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCartStorage{dir: dir}, nil
}

func (s *FileCartStorage) Read(key string) (data []byte, found bool, err error) {
	val, e := os.ReadFile(filepath.Join(s.dir, key+".json"))
	if e != nil {
		if os.IsNotExist(e) {
			return
		}
		log.Printf("FileCartStorage.Read: %v", e)
		err = models.ErrServerError
		return
	}
	data = val
	found = true
	return
}

func (s *FileCartStorage) Write(key string, data []byte) (err error) {
	err = os.WriteFile(filepath.Join(s.dir, key+".json"), data, 0o644)
	if err != nil {
		log.Printf("FileCartStorage.Write: %v", err)
		err = models.ErrServerError
	}
	return
}

// DBCartStorage keeps carts in a key/value table through database/sql, the
// driver (sqlite3 or postgres) is picked at startup.
type DBCartStorage struct {
	db *sql.DB
}

func NewDBCartStorage(conn *sql.DB) (CartStorage, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	err := conn.Ping()
	if err != nil {
		return nil, err
	}
	_, err = conn.Exec("CREATE TABLE IF NOT EXISTS Carts (CartKey TEXT PRIMARY KEY, Data TEXT NOT NULL)")
	if err != nil {
		return nil, err
	}
	return &DBCartStorage{db: conn}, nil
}

func (s *DBCartStorage) Read(key string) (data []byte, found bool, err error) {
	var raw string
	row := s.db.QueryRow("SELECT Data FROM Carts WHERE CartKey = $1", key)
	e := row.Scan(&raw)
	if e != nil {
		if e == sql.ErrNoRows {
			return
		}
		log.Printf("DBCartStorage.Read: %v", e)
		err = models.ErrServerError
		return
	}
	data = []byte(raw)
	found = true
	return
}

func (s *DBCartStorage) Write(key string, data []byte) (err error) {
	_, err = s.db.Exec("INSERT INTO Carts (CartKey, Data) VALUES ($1, $2) ON CONFLICT (CartKey) DO UPDATE SET Data = $2", key, string(data))
	if err != nil {
		log.Printf("DBCartStorage.Write: %v", err)
		err = models.ErrServerError
	}
	return
}
