package pos

import (
	"sync"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// cartStore хранит корзины терминалов в памяти процесса.
// Корзина живёт ровно столько, сколько живёт процесс: по условиям
// предметной области она не переживает рестарт и не пишется в БД.
// Доступ к корзине сериализуется через мьютекс хранилища.
type cartStore struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func newCartStore() *cartStore {
	return &cartStore{
		carts: make(map[string]*domain.Cart),
	}
}

// with выполняет fn над корзиной сессии под блокировкой,
// создавая пустую корзину при первом обращении
func (s *cartStore) with(sessionID string, fn func(cart *domain.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = domain.NewCart()
		s.carts[sessionID] = cart
	}
	fn(cart)
}

// drop удаляет корзину сессии целиком
func (s *cartStore) drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
