//go:generate mockgen -source=../ranking_client.go  -destination=./mock_ranking_client.go  -package=mocks
//go:generate mockgen -source=../catalog_client.go  -destination=./mock_catalog_client.go  -package=mocks
//go:generate mockgen -source=../cart_client.go     -destination=./mock_cart_client.go     -package=mocks
//go:generate mockgen -source=../session_store.go   -destination=./mock_session_store.go   -package=mocks
//go:generate mockgen -source=../result_cache.go    -destination=./mock_result_cache.go    -package=mocks
//go:generate mockgen -source=../resolver.go        -destination=./mock_resolver.go        -package=mocks
//go:generate mockgen -source=../search_service.go  -destination=./mock_search_service.go  -package=mocks

package mocks
