package board

// Connection is a directed edge from Start to End. It has no identity beyond
// the pair and identical connections may coexist.
type Connection struct {
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end" validate:"required"`
}

// ConnectionStore does not validate endpoints; callers keep it consistent
// with the card store.
type ConnectionStore struct {
	connections []Connection
}

func NewConnectionStore() *ConnectionStore {
	return &ConnectionStore{connections: make([]Connection, 0)}
}

func (s *ConnectionStore) Add(start, end string) Connection {
	conn := Connection{Start: start, End: end}
	s.connections = append(s.connections, conn)
	return conn
}

// RemoveTouching drops every connection that starts or ends at id and
// returns the removed ones in their original order.
func (s *ConnectionStore) RemoveTouching(id string) []Connection {
	kept := make([]Connection, 0, len(s.connections))
	var removed []Connection
	for _, conn := range s.connections {
		if conn.Start == id || conn.End == id {
			removed = append(removed, conn)
			continue
		}
		kept = append(kept, conn)
	}
	s.connections = kept
	return removed
}

// RemoveOne drops the most recently added connection equal to conn.
func (s *ConnectionStore) RemoveOne(conn Connection) bool {
	for i := len(s.connections) - 1; i >= 0; i-- {
		if s.connections[i] == conn {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return true
		}
	}
	return false
}

func (s *ConnectionStore) Len() int {
	return len(s.connections)
}

func (s *ConnectionStore) All() []Connection {
	out := make([]Connection, len(s.connections))
	copy(out, s.connections)
	return out
}
