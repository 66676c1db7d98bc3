package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"os"

	"github.com/IliaW/cloak-api/config"
	"github.com/bradfitz/gomemcache/memcache"
)

// FingerprintCache is the opaque key-value lookup the decision path uses for
// client fingerprints. A miss or a cache failure both read as "absent".
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name FingerprintCache
type FingerprintCache interface {
	Lookup(hash string) ([]byte, bool)
	Save(hash string, details []byte)
	Close()
}

type MemcachedClient struct {
	client *memcache.Client
	cfg    *config.CacheConfig
}

func NewMemcachedClient(cacheConfig *config.CacheConfig) *MemcachedClient {
	slog.Info("connecting to memcached...")
	ss := new(memcache.ServerList)
	err := ss.SetServers(cacheConfig.Servers...)
	if err != nil {
		slog.Error("failed to set memcached servers.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	c := &MemcachedClient{
		client: memcache.NewFromSelector(ss),
		cfg:    cacheConfig,
	}
	slog.Info("pinging the memcached.")
	err = c.client.Ping()
	if err != nil {
		slog.Error("connection to the memcached is failed.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	slog.Info("connected to memcached!")

	return c
}

func (mc *MemcachedClient) Lookup(hash string) ([]byte, bool) {
	key := fingerprintKey(hash)
	item, err := mc.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			slog.Debug("fingerprint not found in cache.", slog.String("key", key))
			return nil, false
		}
		slog.Error("failed to check if fingerprint is cached.", slog.String("key", key),
			slog.String("err", err.Error()))
		return nil, false
	}
	slog.Debug("fingerprint found in cache.", slog.String("key", key))

	return item.Value, true
}

func (mc *MemcachedClient) Save(hash string, details []byte) {
	key := fingerprintKey(hash)
	item := &memcache.Item{
		Key:        key,
		Value:      details,
		Expiration: int32((mc.cfg.TtlForFingerprint).Seconds()),
	}
	if err := mc.client.Set(item); err != nil {
		slog.Error("failed to save fingerprint to cache.", slog.String("key", key),
			slog.String("err", err.Error()))
		return
	}
	slog.Debug("fingerprint saved to cache.")
}

func (mc *MemcachedClient) Close() {
	slog.Info("closing memcached connection.")
	err := mc.client.Close()
	if err != nil {
		slog.Error("failed to close memcached connection.", slog.String("err", err.Error()))
	}
}

// Raw fingerprint hashes come from the client and can exceed memcached key
// limits; rehash to a fixed-size key.
func fingerprintKey(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:]) + "-fingerprint"
}
