package activity

type MockSource struct {
	Values     []*Entity
	ErrorValue error
	LoadCalls  int
}

func (m *MockSource) Load() ([]*Entity, error) {
	m.LoadCalls++
	if m.ErrorValue != nil {
		return nil, m.ErrorValue
	}

	return m.Values, nil
}
