package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
)

// Проверка, что CartService удовлетворяет интерфейсу ports.CartService.
var _ ports.CartService = (*CartService)(nil)

// maxLineRecommendations — верхняя граница выдачи на позицию корзины.
const maxLineRecommendations = 10

// lineState — состояние рекомендаций одной позиции: attempted взводится
// при первом запуске и не сбрасывается сбоем (повторов в сессии нет),
// replacing блокирует параллельную замену той же позиции.
type lineState struct {
	attempted bool
	loading   bool
	replacing bool
	items     []domain.Product
}

// CartService — рекомендации по позициям корзины и операции над ними.
// Состояние живёт только в памяти процесса: состав корзины меняется
// чаще, чем живёт сессия, и персистить его смысла нет.
type CartService struct {
	resolver  ports.Resolver
	cart      ports.CartClient
	log       ports.Logger
	validator ports.EventValidator

	mu    sync.Mutex
	lines map[string]*lineState // ключ — ID позиции корзины
}

// NewCartService — DI-конструктор.
func NewCartService(
	resolver ports.Resolver,
	cart ports.CartClient,
	log ports.Logger,
	validator ports.EventValidator,
) *CartService {
	return &CartService{
		resolver:  resolver,
		cart:      cart,
		log:       log,
		validator: validator,
		lines:     make(map[string]*lineState),
	}
}

// SyncLines — привести состояние к текущему составу корзины:
// записи исчезнувших позиций выбрасываются, для новых запускается подбор.
func (s *CartService) SyncLines(ctx context.Context, lines []domain.CartLine) {
	present := make(map[string]struct{}, len(lines))
	for i := range lines {
		present[lines[i].ID] = struct{}{}
	}

	s.mu.Lock()
	for id := range s.lines {
		if _, ok := present[id]; !ok {
			delete(s.lines, id)
		}
	}
	s.mu.Unlock()

	cartIDs := domain.CartProductIDs(lines)
	for i := range lines {
		s.EnsureFetched(ctx, lines[i], cartIDs)
	}
}

// EnsureFetched — однократный подбор рекомендаций для позиции.
// Повторный вызов (включая вызов после сбоя) — no-op. Товары, уже
// лежащие в корзине, выкидываются из выдачи до усечения.
func (s *CartService) EnsureFetched(ctx context.Context, line domain.CartLine, cartProductIDs map[string]struct{}) {
	s.mu.Lock()
	st, ok := s.lines[line.ID]
	if !ok {
		st = &lineState{}
		s.lines[line.ID] = st
	}
	if st.attempted {
		s.mu.Unlock()
		return
	}
	st.attempted = true
	st.loading = true
	s.mu.Unlock()

	items, err := s.resolver.ResolveForItem(ctx, line.ProductID)
	if err != nil {
		s.log.Warnf(ctx, "cart recommendations failed line=%s product=%s err=%v", line.ID, line.ProductID, err)
		items = nil
	}

	filtered := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if _, inCart := cartProductIDs[p.ID]; inCart {
			continue
		}
		filtered = append(filtered, p)
		if len(filtered) == maxLineRecommendations {
			break
		}
	}

	s.mu.Lock()
	st.loading = false
	st.items = filtered
	s.mu.Unlock()
}

// StateFor — состояние рекомендаций позиции; false, если подбор
// для неё ещё не запускался.
func (s *CartService) StateFor(lineID string) (domain.LineRecommendations, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.lines[lineID]
	if !ok {
		return domain.LineRecommendations{}, false
	}
	return domain.LineRecommendations{
		Items:              append([]domain.Product(nil), st.items...),
		Loading:            st.loading,
		LastFetchAttempted: st.attempted,
	}, true
}

// Replace — заменить продукт позиции на рекомендованный.
// На одну позицию одновременно идёт не больше одной замены
// (domain.ErrReplaceInFlight). Успех очищает рекомендации позиции:
// они относились к прежнему продукту. Сбой оставляет их как есть.
func (s *CartService) Replace(ctx context.Context, lineID, targetProductID string) error {
	s.mu.Lock()
	st, ok := s.lines[lineID]
	if !ok {
		s.mu.Unlock()
		return domain.ErrLineNotFound
	}
	if st.replacing {
		s.mu.Unlock()
		return domain.ErrReplaceInFlight
	}
	st.replacing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		st.replacing = false
		s.mu.Unlock()
	}()

	if _, err := s.cart.ReplaceProduct(ctx, lineID, targetProductID); err != nil {
		s.log.Errorf(ctx, "replace failed line=%s target=%s err=%v", lineID, targetProductID, err)
		return fmt.Errorf("%w: %v", domain.ErrReplacementFailed, err)
	}

	s.mu.Lock()
	st.items = []domain.Product{}
	s.mu.Unlock()
	return nil
}

// Summary — текущие позиции корзины вместе с агрегатами.
func (s *CartService) Summary(ctx context.Context) ([]domain.CartLine, domain.CartTotals, error) {
	lines, err := s.cart.Lines(ctx)
	if err != nil {
		return nil, domain.CartTotals{}, err
	}
	return lines, domain.ComputeTotals(lines), nil
}

// UpdateQuantity — прокси к корзинному сервису; количество прижимается к >= 1.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID string, quantity int) (*domain.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}
	return s.cart.UpdateQuantity(ctx, lineID, quantity)
}
