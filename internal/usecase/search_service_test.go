package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/shop_discovery/internal/cache/session"
	"github.com/Gunvolt24/shop_discovery/internal/domain"
	"github.com/Gunvolt24/shop_discovery/internal/ports"
	"github.com/Gunvolt24/shop_discovery/internal/ports/mocks"
	"github.com/Gunvolt24/shop_discovery/internal/projector"
	"github.com/Gunvolt24/shop_discovery/internal/repo/memory"
	"github.com/Gunvolt24/shop_discovery/internal/usecase"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newCache(t *testing.T) ports.ResultCache {
	t.Helper()
	return session.NewResultCache(memory.NewSessionStore(), noopLogger{})
}

func someProducts(n int) []domain.Product {
	out := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Product{ID: string(rune('a' + i)), Title: "item"})
	}
	return out
}

func TestSearch_FetchOncePerNormalizedQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	resolver.EXPECT().
		ResolveForQuery(gomock.Any(), "eco bottle").
		Return(someProducts(2), nil).
		Times(1)

	svc := usecase.NewSearchService(resolver, newCache(t), projector.NewProjector(), noopLogger{})

	first := svc.Search(context.Background(), "  Eco Bottle  ", 1, nil)
	if first.Error != "" || len(first.Results) != 2 {
		t.Fatalf("first search: %+v", first)
	}

	// Тот же запрос в другом регистре — попадание в кэш, сети нет.
	second := svc.Search(context.Background(), "ECO BOTTLE", 1, nil)
	if len(second.Results) != 2 {
		t.Fatalf("second search: %+v", second)
	}
}

func TestSearch_BlankQueryIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl) // без EXPECT: сеть не трогается

	svc := usecase.NewSearchService(resolver, newCache(t), projector.NewProjector(), noopLogger{})

	before := svc.Snapshot()
	after := svc.Search(context.Background(), "   ", 1, nil)
	if after.Status != before.Status || after.Query != before.Query {
		t.Errorf("blank query changed state: %+v -> %+v", before, after)
	}
}

func TestSearch_FailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	gomock.InOrder(
		resolver.EXPECT().ResolveForQuery(gomock.Any(), "mug").
			Return(nil, domain.ErrResolutionFailed),
		resolver.EXPECT().ResolveForQuery(gomock.Any(), "mug").
			Return(someProducts(1), nil),
	)

	svc := usecase.NewSearchService(resolver, newCache(t), projector.NewProjector(), noopLogger{})

	failed := svc.Search(context.Background(), "mug", 1, nil)
	if failed.Error == "" || len(failed.Results) != 0 {
		t.Fatalf("failed search: %+v", failed)
	}
	if failed.Pagination != domain.DefaultPagination() {
		t.Errorf("pagination after failure = %+v", failed.Pagination)
	}

	// Сбой не кэшировался: повтор снова идёт в сеть и проходит.
	retried := svc.Search(context.Background(), "mug", 1, nil)
	if retried.Error != "" || len(retried.Results) != 1 {
		t.Fatalf("retried search: %+v", retried)
	}
}

func TestSearch_EmptyResultIsStillCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	resolver.EXPECT().
		ResolveForQuery(gomock.Any(), "unobtainium").
		Return([]domain.Product{}, nil).
		Times(1)

	svc := usecase.NewSearchService(resolver, newCache(t), projector.NewProjector(), noopLogger{})

	_ = svc.Search(context.Background(), "unobtainium", 1, nil)
	view := svc.Search(context.Background(), "unobtainium", 1, nil)
	if len(view.Results) != 0 || view.Error != "" {
		t.Fatalf("cached empty result: %+v", view)
	}
}

func TestSearch_ClearResetsViewNotCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	resolver.EXPECT().
		ResolveForQuery(gomock.Any(), "lamp").
		Return(someProducts(3), nil).
		Times(1)

	svc := usecase.NewSearchService(resolver, newCache(t), projector.NewProjector(), noopLogger{})

	_ = svc.Search(context.Background(), "lamp", 1, nil)
	svc.Clear()

	snap := svc.Snapshot()
	if len(snap.Results) != 0 || snap.Query != "" || snap.Status != domain.SearchIdle {
		t.Fatalf("after clear: %+v", snap)
	}

	// Кэш переживает Clear: повтор — попадание без сети.
	view := svc.Search(context.Background(), "lamp", 1, nil)
	if len(view.Results) != 3 {
		t.Fatalf("after clear search: %+v", view)
	}
}

func TestSearch_PaginatesCachedResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)

	items := make([]domain.Product, 15)
	for i := range items {
		items[i].ID = string(rune('a' + i))
	}
	resolver.EXPECT().
		ResolveForQuery(gomock.Any(), "chair").
		Return(items, nil).
		Times(1)

	svc := usecase.NewSearchService(resolver, newCache(t), projector.NewProjector(), noopLogger{})

	_ = svc.Search(context.Background(), "chair", 1, nil)
	page2 := svc.Search(context.Background(), "chair", 2, nil)
	if len(page2.Results) != 3 {
		t.Fatalf("page 2 has %d results, want 3", len(page2.Results))
	}
	if page2.Pagination.CurrentPage != 2 || page2.Pagination.TotalPages != 2 || page2.Pagination.TotalResults != 15 {
		t.Errorf("pagination = %+v", page2.Pagination)
	}
}

// Оркестратор кладёт результат под нормализованным ключом в пространство поиска.
func TestSearch_PutsUnderNormalizedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockResolver(ctrl)
	cache := mocks.NewMockResultCache(ctrl)

	resolver.EXPECT().
		ResolveForQuery(gomock.Any(), "eco bottle").
		Return(someProducts(2), nil)
	cache.EXPECT().
		Get(session.NamespaceSearch, "eco bottle").
		Return(domain.CacheEntry{}, false)

	var stored domain.CacheEntry
	cache.EXPECT().
		Put(gomock.Any(), session.NamespaceSearch, "eco bottle", gomock.Any()).
		Do(func(_ context.Context, _, _ string, entry domain.CacheEntry) {
			stored = entry
		})

	svc := usecase.NewSearchService(resolver, cache, projector.NewProjector(), noopLogger{})
	svc.Search(context.Background(), "  Eco Bottle  ", 1, nil)

	if len(stored.Items) != 2 {
		t.Fatalf("stored entry items: %+v", stored.Items)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("stored entry must carry CreatedAt")
	}
}
