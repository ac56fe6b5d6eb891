package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adubrov/boiler-parts/internal/core/domain"
	"github.com/adubrov/boiler-parts/internal/port"
)

// In-memory repository variants. They implement the same ports as the MySQL
// repositories and back the service and handler tests, where a real database
// would only slow things down.

type MemoryPartRepository struct {
	mu    sync.Mutex
	seq   int64
	parts map[int64]domain.PartRecord
}

func NewMemoryPartRepository() *MemoryPartRepository {
	return &MemoryPartRepository{parts: make(map[int64]domain.PartRecord)}
}

func (r *MemoryPartRepository) Create(ctx context.Context, part *domain.PartRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	part.ID = r.seq
	r.parts[part.ID] = *part
	return nil
}

// Update replaces a stored part in place.
func (r *MemoryPartRepository) Update(ctx context.Context, part domain.PartRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parts[part.ID]; !ok {
		return domain.ErrPartNotFound
	}
	r.parts[part.ID] = part
	return nil
}

func (r *MemoryPartRepository) Find(ctx context.Context, id int64) (*domain.PartRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	part, ok := r.parts[id]
	if !ok {
		return nil, domain.ErrPartNotFound
	}
	return &part, nil
}

func (r *MemoryPartRepository) FindByName(ctx context.Context, name string) (*domain.PartRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found *domain.PartRecord
	for id, part := range r.parts {
		if part.Name != name {
			continue
		}
		if found == nil || id < found.ID {
			p := part
			found = &p
		}
	}

	if found == nil {
		return nil, domain.ErrPartNotFound
	}
	return found, nil
}

func (r *MemoryPartRepository) List(ctx context.Context, filter port.PartFilter, page port.PageRequest) (int64, []domain.PartRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.PartRecord, 0, len(r.parts))
	for _, part := range r.parts {
		if matchesFilter(part, filter) {
			matched = append(matched, part)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := page.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return total, matched[start:end], nil
}

func matchesFilter(part domain.PartRecord, filter port.PartFilter) bool {
	if filter.BoilerManufacturer != "" && part.BoilerManufacturer != filter.BoilerManufacturer {
		return false
	}
	if filter.PartsManufacturer != "" && part.PartsManufacturer != filter.PartsManufacturer {
		return false
	}
	if filter.Bestsellers && !part.Bestsellers {
		return false
	}
	if filter.New && !part.New {
		return false
	}
	// An empty search matches everything.
	return strings.Contains(strings.ToLower(part.Name), strings.ToLower(filter.Search))
}

type MemoryCartRepository struct {
	mu    sync.Mutex
	seq   int64
	lines map[int64]domain.CartLine
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{lines: make(map[int64]domain.CartLine)}
}

func (r *MemoryCartRepository) FindAllByUser(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]domain.CartLine, 0)
	for _, line := range r.lines {
		if line.UserID == userID {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })

	return lines, nil
}

func (r *MemoryCartRepository) Create(ctx context.Context, line *domain.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	line.ID = r.seq
	r.lines[line.ID] = *line
	return nil
}

func (r *MemoryCartRepository) UpdateCount(ctx context.Context, lineID int64, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[lineID]
	if !ok {
		return domain.ErrCartLineNotFound
	}
	line.Count = count
	line.UpdatedAt = time.Now().UTC()
	r.lines[lineID] = line
	return nil
}

func (r *MemoryCartRepository) UpdateTotalPrice(ctx context.Context, lineID int64, totalPrice float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, ok := r.lines[lineID]
	if !ok {
		return domain.ErrCartLineNotFound
	}
	line.TotalPrice = totalPrice
	line.UpdatedAt = time.Now().UTC()
	r.lines[lineID] = line
	return nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, lineID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lines, lineID)
	return nil
}

func (r *MemoryCartRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, line := range r.lines {
		if line.UserID == userID {
			delete(r.lines, id)
		}
	}
	return nil
}

type MemoryUserRepository struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]domain.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[int64]domain.User)}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}

	r.seq++
	user.ID = r.seq
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) Find(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.Session)}
}

func (s *MemorySessionStore) Create(ctx context.Context, userID int64, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.sessions[id] = domain.Session{ID: id, UserID: userID, Username: username}
	return id, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}
