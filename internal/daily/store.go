package daily

import "sync"

// Tally is the win/loss count for one date.
type Tally struct {
	Date   string `json:"date"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Stats counts finished daily games per date. Lives for the process only.
type Stats struct {
	mu     sync.Mutex
	byDate map[string]*Tally
}

func NewStats() *Stats { return &Stats{byDate: make(map[string]*Tally)} }

// Record adds one finished game to the tally for date.
func (s *Stats) Record(date string, won bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.byDate[date]
	if !ok {
		t = &Tally{Date: date}
		s.byDate[date] = t
	}
	if won {
		t.Wins++
	} else {
		t.Losses++
	}
}

// Get returns a copy of the tally for date (zero counts if none).
func (s *Stats) Get(date string) Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.byDate[date]; ok {
		return *t
	}
	return Tally{Date: date}
}
