// Package redis provides a Redis/Valkey implementation of the repository interface
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IngridGit24/MeetingPlanner/internal/config"
	"github.com/IngridGit24/MeetingPlanner/internal/models"
	"github.com/redis/go-redis/v9"
)

// Common errors
var (
	ErrNotFound = errors.New("entity not found")
)

// Repository implements the repository interface with Redis storage
type Repository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRepository creates a new Redis repository
func NewRepository(cfg config.RedisConfig) (*Repository, error) {
	var client *redis.Client

	// Use URI if provided, otherwise build connection from individual parameters
	if cfg.URI != "" {
		// Parse options from URI string
		opt, err := redis.ParseURL(cfg.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URI: %w", err)
		}

		// Use DB from config if not specified in the URI
		if opt.DB == 0 {
			opt.DB = cfg.DB
		}

		// Use password from config if not in URI or if empty in URI
		if opt.Password == "" && cfg.Password != "" {
			opt.Password = cfg.Password
		}

		client = redis.NewClient(opt)
	} else {
		address := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

		client = redis.NewClient(&redis.Options{
			Addr:     address,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Repository{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.RecordTTL,
	}, nil
}

// Close closes the Redis connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// roomKey returns the Redis key for a room
func (r *Repository) roomKey(id string) string {
	return fmt.Sprintf("%srooms:%s", r.keyPrefix, id)
}

// meetingKey returns the Redis key for a meeting request
func (r *Repository) meetingKey(id string) string {
	return fmt.Sprintf("%smeetings:%s", r.keyPrefix, id)
}

// SaveRoom saves a room record, replacing any previous one
func (r *Repository) SaveRoom(ctx context.Context, room *models.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	if err := r.client.Set(ctx, r.roomKey(room.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID
func (r *Repository) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	data, err := r.client.Get(ctx, r.roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// ListRooms returns all rooms
func (r *Repository) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return r.listRooms(ctx, nil)
}

// ListRoomsByAvailability returns rooms matching the availability flag
func (r *Repository) ListRoomsByAvailability(ctx context.Context, available bool) ([]*models.Room, error) {
	return r.listRooms(ctx, &available)
}

// listRooms fetches all room records in one MGET roundtrip, optionally
// filtered on the availability flag
func (r *Repository) listRooms(ctx context.Context, available *bool) ([]*models.Room, error) {
	keys, err := r.client.Keys(ctx, r.roomKey("*")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	if len(keys) == 0 {
		return []*models.Room{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room data: %w", err)
	}

	rooms := make([]*models.Room, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}

		strData, ok := v.(string)
		if !ok {
			continue
		}

		var room models.Room
		if err := json.Unmarshal([]byte(strData), &room); err != nil {
			continue
		}

		if available != nil && room.Available != *available {
			continue
		}

		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// RoomExists reports whether a room with the given ID is stored
func (r *Repository) RoomExists(ctx context.Context, id string) (bool, error) {
	exists, err := r.client.Exists(ctx, r.roomKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check if room exists: %w", err)
	}

	return exists > 0, nil
}

// DeleteRoom removes a room by ID. The equipment list lives inside the room
// record, so deleting the key removes it as well.
func (r *Repository) DeleteRoom(ctx context.Context, id string) error {
	key := r.roomKey(id)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check if room exists: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// SaveMeeting saves a meeting request record
func (r *Repository) SaveMeeting(ctx context.Context, meeting *models.MeetingRequest) error {
	data, err := json.Marshal(meeting)
	if err != nil {
		return fmt.Errorf("failed to marshal meeting: %w", err)
	}

	if err := r.client.Set(ctx, r.meetingKey(meeting.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save meeting: %w", err)
	}

	return nil
}

// GetMeeting retrieves a meeting request by ID
func (r *Repository) GetMeeting(ctx context.Context, id string) (*models.MeetingRequest, error) {
	data, err := r.client.Get(ctx, r.meetingKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	var meeting models.MeetingRequest
	if err := json.Unmarshal(data, &meeting); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meeting: %w", err)
	}

	return &meeting, nil
}

// ListMeetings returns all pending meeting requests
func (r *Repository) ListMeetings(ctx context.Context) ([]*models.MeetingRequest, error) {
	keys, err := r.client.Keys(ctx, r.meetingKey("*")).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	if len(keys) == 0 {
		return []*models.MeetingRequest{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting data: %w", err)
	}

	meetings := make([]*models.MeetingRequest, 0, len(values))
	for _, v := range values {
		if v == nil {
			continue
		}

		strData, ok := v.(string)
		if !ok {
			continue
		}

		var meeting models.MeetingRequest
		if err := json.Unmarshal([]byte(strData), &meeting); err != nil {
			continue
		}

		meetings = append(meetings, &meeting)
	}

	return meetings, nil
}

// DeleteMeeting removes a meeting request by ID
func (r *Repository) DeleteMeeting(ctx context.Context, id string) error {
	key := r.meetingKey(id)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check if meeting exists: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	return nil
}
