package network

type MockHttp struct {
	GetFunc     func(url string) ([]byte, error)
	PostFunc    func(url string, body []byte) ([]byte, error)
	PostRawFunc func(url, contentType string, body []byte) ([]byte, error)
}

func (m *MockHttp) Get(url string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(url)
	}

	return nil, nil
}

func (m *MockHttp) Post(url string, body []byte) ([]byte, error) {
	if m.PostFunc != nil {
		return m.PostFunc(url, body)
	}

	return nil, nil
}

func (m *MockHttp) PostRaw(url, contentType string, body []byte) ([]byte, error) {
	if m.PostRawFunc != nil {
		return m.PostRawFunc(url, contentType, body)
	}

	return nil, nil
}
