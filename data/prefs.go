package data

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const recentSearchLimit = 10

type RedisConfig struct {
	Addr     string `default:"localhost:6379"`
	Password string
	DB       int
}

// PrefsStore keeps per-patient UI preferences (favorite doctors and recent
// searches) in redis. These were browser-local state in the old client and
// are modelled here as an injected key-value store.
type PrefsStore struct {
	rdb *redis.Client
}

func NewPrefsStore(config RedisConfig) *PrefsStore {
	return &PrefsStore{
		rdb: redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		}),
	}
}

func NewPrefsStoreWithClient(rdb *redis.Client) *PrefsStore {
	return &PrefsStore{rdb: rdb}
}

func favoritesKey(patientID string) string {
	return fmt.Sprintf("patient:%s:favorites", patientID)
}

func searchesKey(patientID string) string {
	return fmt.Sprintf("patient:%s:recent-searches", patientID)
}

func (s *PrefsStore) AddFavorite(ctx context.Context, patientID string, doctorID int) error {
	return s.rdb.SAdd(ctx, favoritesKey(patientID), doctorID).Err()
}

func (s *PrefsStore) RemoveFavorite(ctx context.Context, patientID string, doctorID int) error {
	return s.rdb.SRem(ctx, favoritesKey(patientID), doctorID).Err()
}

func (s *PrefsStore) Favorites(ctx context.Context, patientID string) ([]int, error) {
	members, err := s.rdb.SMembers(ctx, favoritesKey(patientID)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// AddSearch pushes a search query to the front of the patient's history,
// keeping at most recentSearchLimit entries.
func (s *PrefsStore) AddSearch(ctx context.Context, patientID, query string) error {
	key := searchesKey(patientID)

	pipe := s.rdb.TxPipeline()
	pipe.LRem(ctx, key, 0, query)
	pipe.LPush(ctx, key, query)
	pipe.LTrim(ctx, key, 0, recentSearchLimit-1)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *PrefsStore) RecentSearches(ctx context.Context, patientID string) ([]string, error) {
	return s.rdb.LRange(ctx, searchesKey(patientID), 0, recentSearchLimit-1).Result()
}
