package slotcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Metrics интерфейс для метрик операций с кэшем
type Metrics interface {
	IncCacheOp(operation, result string)
}

// Cache redis-кэш рассчитанных слотов на день.
// Слоты на день меняются при каждом создании/отмене записи, поэтому TTL
// должен быть коротким; инвалидация по событиям не предусмотрена.
// Любая ошибка redis деградирует в cache-miss и никогда не фатальна.
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	log     Logger
	metrics Metrics
}

// NewCache создает новый кэш слотов. metrics может быть nil.
func NewCache(client *redis.Client, ttl time.Duration, log Logger, metrics Metrics) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		log:     log,
		metrics: metrics,
	}
}

// GetDaySlots возвращает закэшированные слоты на день, если они есть
func (c *Cache) GetDaySlots(ctx context.Context, tenantID, serviceID int64, staffID *int64, date time.Time) ([]domain.Slot, bool) {
	key := daySlotsKey(tenantID, serviceID, staffID, date)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("slotcache: get failed for key=%s: %v", key, err)
			c.incOp("get", "error")
			return nil, false
		}
		c.incOp("get", "miss")
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(payload, &slots); err != nil {
		// Битое значение — считаем промахом, значение перезапишется
		c.log.Warn("slotcache: %v for key=%s: %v", ErrDecode, key, err)
		c.incOp("get", "error")
		return nil, false
	}

	c.log.Debug("slotcache: hit for key=%s, slots=%d", key, len(slots))
	c.incOp("get", "hit")
	return slots, true
}

// StoreDaySlots сохраняет рассчитанные слоты на день с TTL
func (c *Cache) StoreDaySlots(ctx context.Context, tenantID, serviceID int64, staffID *int64, date time.Time, slots []domain.Slot) {
	key := daySlotsKey(tenantID, serviceID, staffID, date)

	payload, err := json.Marshal(slots)
	if err != nil {
		c.log.Warn("slotcache: %v for key=%s: %v", ErrEncode, key, err)
		c.incOp("set", "error")
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("slotcache: set failed for key=%s: %v", key, err)
		c.incOp("set", "error")
		return
	}

	c.incOp("set", "ok")
}

func (c *Cache) incOp(operation, result string) {
	if c.metrics != nil {
		c.metrics.IncCacheOp(operation, result)
	}
}

// daySlotsKey формирует ключ кэша; staffID == nil означает any-staff запрос
func daySlotsKey(tenantID, serviceID int64, staffID *int64, date time.Time) string {
	staffPart := "any"
	if staffID != nil {
		staffPart = fmt.Sprintf("%d", *staffID)
	}
	return fmt.Sprintf("slots:%d:%d:%s:%s", tenantID, serviceID, staffPart, date.Format(domain.DateFormat))
}
