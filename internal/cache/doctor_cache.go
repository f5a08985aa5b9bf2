package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bookmyconsultation/consult-scheduler/internal/config"
	"github.com/bookmyconsultation/consult-scheduler/internal/logger"
	"github.com/bookmyconsultation/consult-scheduler/internal/models"
)

const doctorTTL = 5 * time.Minute

// DoctorCache keeps doctor records (including the derived rating) in redis
// so the public directory endpoints don't hit postgres on every read. All
// doctor writes, the aggregator's rating updates included, invalidate the
// entry.
type DoctorCache struct {
	rdb *redis.Client
}

func NewDoctorCache(cfg *config.Config) *DoctorCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	return &DoctorCache{rdb: rdb}
}

func key(doctorID uint) string {
	return fmt.Sprintf("doctor:%d", doctorID)
}

func (c *DoctorCache) Get(ctx context.Context, doctorID uint) (*models.Doctor, bool) {
	raw, err := c.rdb.Get(ctx, key(doctorID)).Bytes()
	if err != nil {
		return nil, false
	}

	var doc models.Doctor
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

func (c *DoctorCache) Set(ctx context.Context, doc *models.Doctor) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(doc.ID), raw, doctorTTL).Err(); err != nil {
		logger.Log.Warn().Err(err).Uint("doctor_id", doc.ID).Msg("doctor cache set failed")
	}
}

func (c *DoctorCache) Invalidate(ctx context.Context, doctorID uint) {
	if err := c.rdb.Del(ctx, key(doctorID)).Err(); err != nil {
		logger.Log.Warn().Err(err).Uint("doctor_id", doctorID).Msg("doctor cache invalidate failed")
	}
}
