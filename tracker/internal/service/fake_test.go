package service_test

import (
	"bytes"
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/Astemirdum/book-tracker/tracker/internal/errs"
	"github.com/Astemirdum/book-tracker/tracker/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type earnedKey struct {
	userID        uuid.UUID
	achievementID int64
}

type followKey struct {
	followerID, followingID uuid.UUID
}

// fakeState is the transactional part of the store.
type fakeState struct {
	users   map[uuid.UUID]model.User
	owned   map[int64]model.UserBook
	earned  map[earnedKey]time.Time
	follows map[followKey]model.Follow
}

func newFakeState() fakeState {
	return fakeState{
		users:   make(map[uuid.UUID]model.User),
		owned:   make(map[int64]model.UserBook),
		earned:  make(map[earnedKey]time.Time),
		follows: make(map[followKey]model.Follow),
	}
}

func (s fakeState) clone() fakeState {
	c := newFakeState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.owned {
		c.owned[k] = v
	}
	for k, v := range s.earned {
		c.earned[k] = v
	}
	for k, v := range s.follows {
		c.follows[k] = v
	}
	return c
}

type fakeTx struct {
	base, work fakeState
}

type fakeTxKey struct{}

// fakeStore is an in-memory repository with optimistic transactions.
// Each transaction works on a private copy. Commit applies the keys it
// changed and fails with errs.ErrConflict when another transaction
// committed a different value for any of them in the meantime.
type fakeStore struct {
	mu sync.Mutex

	state         fakeState
	titles        map[int64]string
	nextOwnID     int64
	catalog       []model.Achievement
	notifications []model.Notification
	feed          []model.FeedPost
	gate          *commitGate

	// saveUserConflicts makes the next n SaveUser calls report a stale version.
	saveUserConflicts int
	saveUserCalls     int
	txCount           int
}

var seedCatalog = []model.Achievement{
	{ID: 1, Title: "First Book Read", Description: "Finish your first book.", Metric: model.MetricBooksRead, Goal: 1, PointsReward: 10, IconURL: "https://cdn-icons-png.flaticon.com/512/1828/1828884.png"},
	{ID: 2, Title: "Reading Streak", Description: "Log in and read for 7 days in a row!", Metric: model.MetricLoginStreak, Goal: 7, PointsReward: 50},
	{ID: 3, Title: "Book Collector", Description: "Add 50 books to your library.", Metric: model.MetricTotalBooks, Goal: 50, PointsReward: 30},
	{ID: 4, Title: "Points Master", Description: "Accumulate 500 points in total.", Metric: model.MetricPoints, Goal: 500, PointsReward: 100},
}

func newFakeStore(catalog []model.Achievement) *fakeStore {
	titles := make(map[int64]string)
	for i := int64(1); i <= 100; i++ {
		titles[i] = "Book " + string(rune('A'+(i-1)%26))
	}
	titles[42] = "Dune"
	return &fakeStore{
		state:   newFakeState(),
		titles:  titles,
		catalog: catalog,
	}
}

// commitGate holds the first n transactions at commit until all n have
// arrived or wait has passed, so their reads overlap.
type commitGate struct {
	mu      sync.Mutex
	n       int
	arrived int
	all     chan struct{}
	wait    time.Duration
}

func (g *commitGate) arrive() {
	g.mu.Lock()
	if g.arrived >= g.n {
		g.mu.Unlock()
		return
	}
	g.arrived++
	if g.arrived == g.n {
		close(g.all)
	}
	g.mu.Unlock()

	select {
	case <-g.all:
	case <-time.After(g.wait):
	}
}

func (f *fakeStore) holdCommits(n int, wait time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gate = &commitGate{n: n, all: make(chan struct{}), wait: wait}
}

func (f *fakeStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(fakeTxKey{}).(*fakeTx); ok {
		return fn(ctx)
	}
	f.mu.Lock()
	f.txCount++
	base := f.state.clone()
	gate := f.gate
	f.mu.Unlock()

	tx := &fakeTx{base: base, work: base.clone()}
	if err := fn(context.WithValue(ctx, fakeTxKey{}, tx)); err != nil {
		return err
	}
	if gate != nil {
		gate.arrive()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.commit(tx)
}

func (f *fakeStore) commit(tx *fakeTx) error {
	for id, ub := range tx.work.owned {
		if _, existed := tx.base.owned[id]; existed {
			continue
		}
		for otherID, other := range f.state.owned {
			if otherID != id && other.UserID == ub.UserID && other.BookID == ub.BookID {
				return errs.ErrAlreadyInLibrary
			}
		}
	}
	if err := firstConflict("user", tx.base.users, tx.work.users, f.state.users); err != nil {
		return err
	}
	if err := firstConflict("ownership", tx.base.owned, tx.work.owned, f.state.owned); err != nil {
		return err
	}
	if err := firstConflict("achievement", tx.base.earned, tx.work.earned, f.state.earned); err != nil {
		return err
	}
	if err := firstConflict("follow", tx.base.follows, tx.work.follows, f.state.follows); err != nil {
		return err
	}
	apply(tx.base.users, tx.work.users, f.state.users)
	apply(tx.base.owned, tx.work.owned, f.state.owned)
	apply(tx.base.earned, tx.work.earned, f.state.earned)
	apply(tx.base.follows, tx.work.follows, f.state.follows)
	return nil
}

func changedKeys[K comparable, V any](base, work map[K]V) []K {
	var keys []K
	for k, v := range work {
		if old, ok := base[k]; !ok || !reflect.DeepEqual(old, v) {
			keys = append(keys, k)
		}
	}
	for k := range base {
		if _, ok := work[k]; !ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func firstConflict[K comparable, V any](what string, base, work, committed map[K]V) error {
	for _, k := range changedKeys(base, work) {
		old, inBase := base[k]
		cur, inCommitted := committed[k]
		if inBase != inCommitted || !reflect.DeepEqual(old, cur) {
			return errors.Wrapf(errs.ErrConflict, "%s %v changed concurrently", what, k)
		}
	}
	return nil
}

func apply[K comparable, V any](base, work, committed map[K]V) {
	for _, k := range changedKeys(base, work) {
		if v, ok := work[k]; ok {
			committed[k] = v
		} else {
			delete(committed, k)
		}
	}
}

// view returns the state seen by ctx. The caller holds f.mu.
func (f *fakeStore) view(ctx context.Context) *fakeState {
	if tx, ok := ctx.Value(fakeTxKey{}).(*fakeTx); ok {
		return &tx.work
	}
	return &f.state
}

func (f *fakeStore) addUser(u model.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.users[u.ID] = u
}

func (f *fakeStore) user(id uuid.UUID) model.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.users[id]
}

func (f *fakeStore) own(userID uuid.UUID, bookID int64, st model.BookStatus) model.UserBook {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextOwnID++
	ub := model.UserBook{ID: f.nextOwnID, UserID: userID, BookID: bookID, Title: f.titles[bookID], Status: st}
	f.state.owned[ub.ID] = ub
	return ub
}

func (f *fakeStore) ownership(id int64) model.UserBook {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.owned[id]
}

func (f *fakeStore) countStatus(userID uuid.UUID, st model.BookStatus) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, ub := range f.state.owned {
		if ub.UserID == userID && ub.Status == st {
			n++
		}
	}
	return n
}

func (f *fakeStore) earnedCount(userID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k := range f.state.earned {
		if k.userID == userID {
			n++
		}
	}
	return n
}

func (f *fakeStore) txs() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.txCount
}

func (f *fakeStore) GetOwnership(ctx context.Context, userID uuid.UUID, bookID int64) (model.UserBook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ub := range f.view(ctx).owned {
		if ub.UserID == userID && ub.BookID == bookID {
			return ub, nil
		}
	}
	return model.UserBook{}, errs.ErrNotFound
}

func (f *fakeStore) GetOwnershipByID(ctx context.Context, userID uuid.UUID, id int64) (model.UserBook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ub, ok := f.view(ctx).owned[id]
	if !ok || ub.UserID != userID {
		return model.UserBook{}, errs.ErrNotFound
	}
	return ub, nil
}

func (f *fakeStore) CreateOwnership(ctx context.Context, userID uuid.UUID, bookID int64) (model.UserBook, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	title, ok := f.titles[bookID]
	if !ok {
		return model.UserBook{}, errs.ErrBookNotFound
	}
	st := f.view(ctx)
	for _, ub := range st.owned {
		if ub.UserID == userID && ub.BookID == bookID {
			return model.UserBook{}, errs.ErrAlreadyInLibrary
		}
	}
	f.nextOwnID++
	ub := model.UserBook{ID: f.nextOwnID, UserID: userID, BookID: bookID, Title: title, Status: model.StatusUnread}
	st.owned[ub.ID] = ub
	return ub, nil
}

func (f *fakeStore) SaveOwnership(ctx context.Context, ub model.UserBook) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	if _, ok := st.owned[ub.ID]; !ok {
		return errs.ErrNotFound
	}
	st.owned[ub.ID] = ub
	return nil
}

func (f *fakeStore) EnsureUser(ctx context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	if _, ok := st.users[userID]; !ok {
		st.users[userID] = model.User{ID: userID}
	}
	return nil
}

func (f *fakeStore) GetUser(ctx context.Context, userID uuid.UUID) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.view(ctx).users[userID]
	if !ok {
		return model.User{}, errs.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) GetUserForUpdate(ctx context.Context, userID uuid.UUID) (model.User, error) {
	return f.GetUser(ctx, userID)
}

// SaveUser rejects a version that is stale against either the transaction's
// view or what is already committed.
func (f *fakeStore) SaveUser(ctx context.Context, u model.User) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveUserCalls++
	if f.saveUserConflicts > 0 {
		f.saveUserConflicts--
		return model.User{}, errors.Wrap(errs.ErrConflict, "stale version")
	}
	st := f.view(ctx)
	cur, ok := st.users[u.ID]
	committed := f.state.users[u.ID]
	if !ok || cur.Version != u.Version || committed.Version != u.Version {
		return model.User{}, errors.Wrapf(errs.ErrConflict, "user %s version %d", u.ID, u.Version)
	}
	u.Version++
	st.users[u.ID] = u
	return u, nil
}

func (f *fakeStore) SetFollowApproval(ctx context.Context, userID uuid.UUID, require bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	u, ok := st.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.RequireFollowApproval = require
	st.users[userID] = u
	return nil
}

func (f *fakeStore) ListAchievements(context.Context) ([]model.Achievement, error) {
	out := append([]model.Achievement(nil), f.catalog...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListEarned(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[int64]struct{})
	for k := range f.view(ctx).earned {
		if k.userID == userID {
			out[k.achievementID] = struct{}{}
		}
	}
	return out, nil
}

func (f *fakeStore) RecordEarned(ctx context.Context, userID uuid.UUID, achievementID int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	k := earnedKey{userID: userID, achievementID: achievementID}
	if _, dup := st.earned[k]; dup {
		return errors.Wrap(errs.ErrConflict, "duplicate unlock")
	}
	st.earned[k] = at
	return nil
}

func (f *fakeStore) ListUnlocked(ctx context.Context, userID uuid.UUID) ([]model.UnlockedAchievement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	var out []model.UnlockedAchievement
	for _, a := range f.catalog {
		if at, ok := st.earned[earnedKey{userID: userID, achievementID: a.ID}]; ok {
			out = append(out, model.UnlockedAchievement{Achievement: a, EarnedAt: at})
		}
	}
	return out, nil
}

func (f *fakeStore) CreateNotification(_ context.Context, n model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeStore) ListNotifications(_ context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Notification
	for i := len(f.notifications) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if f.notifications[i].UserID == userID {
			out = append(out, f.notifications[i])
		}
	}
	return out, nil
}

func (f *fakeStore) MarkNotificationRead(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notifications {
		if f.notifications[i].ID == id && f.notifications[i].UserID == userID {
			f.notifications[i].IsRead = true
			return nil
		}
	}
	return errs.ErrNotificationNotFound
}

func (f *fakeStore) CreateFeedPost(_ context.Context, p model.FeedPost) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.feed {
		if existing.ID == p.ID {
			return nil
		}
	}
	f.feed = append(f.feed, p)
	return nil
}

func feedBefore(a model.FeedPost, c model.FeedCursor) bool {
	if !a.CreatedAt.Equal(c.CreatedAt) {
		return a.CreatedAt.Before(c.CreatedAt)
	}
	return bytes.Compare(a.ID[:], c.ID[:]) < 0
}

func (f *fakeStore) ListFeed(ctx context.Context, viewerID uuid.UUID, after *model.FeedCursor, limit int) ([]model.FeedPost, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	var items []model.FeedPost
	for _, p := range f.feed {
		fl, ok := st.follows[followKey{followerID: viewerID, followingID: p.UserID}]
		if p.UserID == viewerID || (ok && fl.IsApproved) {
			items = append(items, p)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return feedBefore(items[j], model.FeedCursor{CreatedAt: items[i].CreatedAt, ID: items[i].ID})
	})
	var out []model.FeedPost
	for _, p := range items {
		if after != nil && !feedBefore(p, *after) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) CreateFollow(ctx context.Context, fl model.Follow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	if _, ok := st.users[fl.FollowingID]; !ok {
		return errs.ErrUserNotFound
	}
	k := followKey{followerID: fl.FollowerID, followingID: fl.FollowingID}
	if _, ok := st.follows[k]; ok {
		return errs.ErrAlreadyFollowing
	}
	st.follows[k] = fl
	return nil
}

func (f *fakeStore) DeleteFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	k := followKey{followerID: followerID, followingID: followingID}
	if _, ok := st.follows[k]; !ok {
		return errs.ErrFollowNotFound
	}
	delete(st.follows, k)
	return nil
}

func (f *fakeStore) ApproveFollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	st := f.view(ctx)
	k := followKey{followerID: followerID, followingID: followingID}
	fl, ok := st.follows[k]
	if !ok || fl.IsApproved {
		return errs.ErrFollowNotFound
	}
	fl.IsApproved = true
	st.follows[k] = fl
	return nil
}

func (f *fakeStore) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Follow, error) {
	return f.listFollows(ctx, func(fl model.Follow) bool { return fl.FollowerID == userID && fl.IsApproved })
}

func (f *fakeStore) ListPendingFollowers(ctx context.Context, userID uuid.UUID) ([]model.Follow, error) {
	return f.listFollows(ctx, func(fl model.Follow) bool { return fl.FollowingID == userID && !fl.IsApproved })
}

func (f *fakeStore) listFollows(ctx context.Context, match func(model.Follow) bool) ([]model.Follow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Follow
	for _, fl := range f.view(ctx).follows {
		if match(fl) {
			out = append(out, fl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type sent struct {
	userID  uuid.UUID
	typ     model.NotificationType
	message string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sent
}

func (n *recordingNotifier) Send(_ context.Context, userID uuid.UUID, typ model.NotificationType, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sent{userID: userID, typ: typ, message: message})
}

func (n *recordingNotifier) count(typ model.NotificationType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, s := range n.sent {
		if s.typ == typ {
			c++
		}
	}
	return c
}

// nopLocker hands out every scope at once.
type nopLocker struct{}

func (nopLocker) Lock(context.Context, string) (func(), error) { return func() {}, nil }
