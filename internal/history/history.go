package history

import (
	"bufio"
	"os"
	"sync"
)

const maxItems = 1000

// History records the lines executed during a session. With an empty
// file path it is purely in-memory; otherwise New loads any previous
// session and Save rewrites the file.
type History struct {
	items []string
	file  string
	mu    sync.Mutex
}

func New(file string) (*History, error) {
	h := &History{file: file}
	if file == "" {
		return h, nil
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *History) Add(item string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append(h.items, item)
	if len(h.items) > maxItems {
		h.items = h.items[len(h.items)-maxItems:]
	}
}

func (h *History) GetAll() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string{}, h.items...)
}

func (h *History) Save() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == "" {
		return nil
	}

	file, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, item := range h.items {
		if _, err := writer.WriteString(item + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func (h *History) load() error {
	file, err := os.Open(h.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.items = append(h.items, scanner.Text())
	}
	if len(h.items) > maxItems {
		h.items = h.items[len(h.items)-maxItems:]
	}
	return scanner.Err()
}
