package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/sleepifoxx/timtro-web/internal/domain"
	"github.com/sleepifoxx/timtro-web/internal/repository/ports"
)

type FavoriteState string

const (
	FavoriteNone    FavoriteState = "not-favorited"
	FavoritePending FavoriteState = "pending"
	FavoriteSaved   FavoriteState = "favorited"
)

const (
	msgFavoriteAdded   = "Đã thêm vào danh sách yêu thích"
	msgFavoriteRemoved = "Đã xóa khỏi danh sách yêu thích"
	msgFavoriteFailed  = "Không thể cập nhật danh sách yêu thích"
)

// Per-user toggle state is a cache over the backend's membership, so it is
// kept in a bounded LRU with a TTL. An evicted user is simply re-seeded from
// the backend on their next favorite action.
const (
	favoriteCacheSize = 4096
	favoriteCacheTTL  = 30 * time.Minute
)

// userFavorites holds one user's toggle states and the per-listing locks
// that serialize their toggles. Evicting the entry drops both together.
type userFavorites struct {
	mu     sync.Mutex
	seeded bool
	states map[int]FavoriteState
	locks  map[int]*sync.Mutex
}

// FavoriteService drives the per-listing favorite toggle state machine:
// not-favorited -> pending -> favorited and back. A failed upstream call
// reverts to the prior stable state and emits exactly one transient
// notification. Toggles on the same (user, listing) pair are serialized so a
// double-click cannot lose an update.
type FavoriteService struct {
	store    ports.FavoriteStore
	listings ports.ListingProvider
	enricher *Enricher

	mu    sync.Mutex
	users *expirable.LRU[int, *userFavorites]
}

func NewFavoriteService(store ports.FavoriteStore, listings ports.ListingProvider, enricher *Enricher) *FavoriteService {
	return &FavoriteService{
		store:    store,
		listings: listings,
		enricher: enricher,
		users:    expirable.NewLRU[int, *userFavorites](favoriteCacheSize, nil, favoriteCacheTTL),
	}
}

// Toggle flips the favorite membership of one listing. It returns the state
// after the toggle settled and the single notification to show.
func (s *FavoriteService) Toggle(ctx context.Context, userID, postID int) (FavoriteState, domain.Notification, error) {
	u := s.user(userID)
	lock := u.lock(postID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.seed(ctx, userID, u); err != nil {
		return FavoriteNone, domain.NewNotification(domain.NotificationError, msgFavoriteFailed), err
	}

	prior := u.state(postID)
	u.setState(postID, FavoritePending)

	var err error
	if prior == FavoriteSaved {
		err = s.store.Remove(ctx, userID, postID)
	} else {
		err = s.store.Add(ctx, userID, postID)
	}

	if err != nil {
		u.setState(postID, prior)
		return prior, domain.NewNotification(domain.NotificationError, msgFavoriteFailed), err
	}

	if prior == FavoriteSaved {
		u.setState(postID, FavoriteNone)
		return FavoriteNone, domain.NewNotification(domain.NotificationError, msgFavoriteRemoved), nil
	}
	u.setState(postID, FavoriteSaved)
	return FavoriteSaved, domain.NewNotification(domain.NotificationSuccess, msgFavoriteAdded), nil
}

// State reports the current toggle state of one listing for a user.
func (s *FavoriteService) State(ctx context.Context, userID, postID int) (FavoriteState, error) {
	u := s.user(userID)
	lock := u.lock(postID)
	lock.Lock()
	defer lock.Unlock()
	if err := s.seed(ctx, userID, u); err != nil {
		return FavoriteNone, err
	}
	return u.state(postID), nil
}

// IDs returns the set of favorited listing ids, used to fill heart icons
// across a rendered page.
func (s *FavoriteService) IDs(ctx context.Context, userID int) (map[int]bool, error) {
	favorites, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(favorites))
	u := s.user(userID)
	u.mu.Lock()
	for _, fav := range favorites {
		ids[fav.PostID] = true
		u.states[fav.PostID] = FavoriteSaved
	}
	u.seeded = true
	u.mu.Unlock()
	return ids, nil
}

// ListEnriched loads the user's favorited listings fully enriched, for the
// favorites page. A listing that can no longer be fetched is skipped.
func (s *FavoriteService) ListEnriched(ctx context.Context, userID int) ([]domain.EnrichedListing, error) {
	favorites, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ListingSummary, 0, len(favorites))
	for _, fav := range favorites {
		summary, err := s.listings.GetByID(ctx, fav.PostID)
		if err != nil {
			log.Printf("favorites: post %d unavailable: %v", fav.PostID, err)
			continue
		}
		summaries = append(summaries, *summary)
	}

	return s.enricher.EnrichAll(ctx, summaries), nil
}

// user returns the cached entry for one user, creating it on a miss or
// after eviction.
func (s *FavoriteService) user(userID int) *userFavorites {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users.Get(userID)
	if !ok {
		u = &userFavorites{
			states: make(map[int]FavoriteState),
			locks:  make(map[int]*sync.Mutex),
		}
		s.users.Add(userID, u)
	}
	return u
}

// seed loads the user's membership once per cache entry so the first toggle
// starts from the backend's truth rather than an empty map.
func (s *FavoriteService) seed(ctx context.Context, userID int, u *userFavorites) error {
	u.mu.Lock()
	done := u.seeded
	u.mu.Unlock()
	if done {
		return nil
	}

	favorites, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.seeded {
		return nil
	}
	for _, fav := range favorites {
		u.states[fav.PostID] = FavoriteSaved
	}
	u.seeded = true
	return nil
}

func (u *userFavorites) lock(postID int) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()
	lock, ok := u.locks[postID]
	if !ok {
		lock = &sync.Mutex{}
		u.locks[postID] = lock
	}
	return lock
}

func (u *userFavorites) state(postID int) FavoriteState {
	u.mu.Lock()
	defer u.mu.Unlock()
	state, ok := u.states[postID]
	if !ok {
		return FavoriteNone
	}
	return state
}

func (u *userFavorites) setState(postID int, state FavoriteState) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if state == FavoriteNone {
		delete(u.states, postID)
		return
	}
	u.states[postID] = state
}
