// Package postgres PostgreSQL(pgx) 기반 저장소 구현입니다.
package postgres

import (
	"context"
	_ "embed"
	"strconv"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	"github.com/darkkaiser/shop-compare-server/internal/service/contract"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const component = "store.postgres"

//go:embed schema.sql
var schemaSQL string

// querier 커넥션 풀과 트랜잭션이 공통으로 제공하는 메서드입니다.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store contract.Store의 PostgreSQL 구현체입니다.
type Store struct {
	pool *pgxpool.Pool
}

// Open 커넥션 풀을 만들고 연결을 확인한 뒤 스키마를 준비합니다.
func Open(ctx context.Context, cfg config.PostgresConfig) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "PostgreSQL 접속 URL을 해석할 수 없습니다")
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	if cfg.StatementTimeout > 0 {
		poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "PostgreSQL 커넥션 풀 생성에 실패했습니다")
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "PostgreSQL 연결 확인에 실패했습니다")
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"host":      poolCfg.ConnConfig.Host,
		"database":  poolCfg.ConnConfig.Database,
		"max_conns": poolCfg.MaxConns,
	}).Info("PostgreSQL 저장소 연결 완료")

	return s, nil
}

// migrate 테이블이 없으면 생성합니다. 여러 번 실행해도 결과가 같습니다.
func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return apperrors.Wrap(err, apperrors.System, "스키마 초기화에 실패했습니다")
	}
	return nil
}

// WithinTx fn을 하나의 트랜잭션 안에서 실행합니다.
// fn이 에러를 반환하면 롤백하고, 그렇지 않으면 커밋합니다.
func (s *Store) WithinTx(ctx context.Context, fn func(tx contract.Tx) error) error {
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(t pgx.Tx) error {
		return fn(&tx{q: t})
	})
	return wrapQueryError(err, "트랜잭션")
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close 커넥션 풀을 닫습니다. 사용 중인 커넥션이 반환될 때까지 대기합니다.
func (s *Store) Close() {
	s.pool.Close()
}

// CountRecords 테이블별 행 수를 반환합니다.
func (s *Store) CountRecords(ctx context.Context) (contract.RecordCounts, error) {
	const q = `
SELECT (SELECT count(*) FROM shops),
       (SELECT count(*) FROM products),
       (SELECT count(*) FROM search_records),
       (SELECT count(*) FROM comparison_records)`

	var c contract.RecordCounts
	if err := s.pool.QueryRow(ctx, q).Scan(&c.Shops, &c.Products, &c.SearchRecords, &c.Comparisons); err != nil {
		return contract.RecordCounts{}, wrapQueryError(err, "레코드 수 조회")
	}
	return c, nil
}
