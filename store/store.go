package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate"
	"github.com/golang-migrate/migrate/database/mysql"
	_ "github.com/golang-migrate/migrate/source/file"
	"github.com/sisu-network/lib/log"

	"github.com/tidewallet/core/config"
	"github.com/tidewallet/core/types"
)

// Store is the durable record of every transaction the engine has
// broadcast, plus the swap side payloads. Writes are synchronous; the
// change feed lets read surfaces refresh without polling.
type Store interface {
	Init() error

	InsertTransactions(txs []*types.Transaction) error
	UpsertTransaction(tx *types.Transaction) error
	DeleteTransaction(id string) error

	// ApplyBatch persists one reconciliation tick atomically: all
	// upserts and deletes commit together or not at all.
	ApplyBatch(upserts []*types.Transaction, deletes []string) error

	GetTransaction(id string) (*types.Transaction, error)
	GetPendingTransactions() ([]*types.Transaction, error)
	GetTransactionsByState(state types.TransactionState) ([]*types.Transaction, error)

	AddSwapMetadata(txId string, m *types.SwapMetadata) error
	GetSwapMetadata(txId string) (*types.SwapMetadata, error)

	// Changes emits the affected records after each committed write.
	Changes() <-chan []*types.Transaction
	// ObserveByState streams writes that leave a record in the given
	// state; ObserveTransaction streams writes touching one record id.
	// Both are best-effort like Changes.
	ObserveByState(state types.TransactionState) <-chan []*types.Transaction
	ObserveTransaction(id string) <-chan []*types.Transaction
}

type dbLogger struct{}

func (l *dbLogger) Printf(format string, v ...interface{}) {
	log.Verbose(fmt.Sprintf(format, v...))
}

func (l *dbLogger) Verbose() bool {
	return false
}

type MysqlStore struct {
	cfg *config.Config
	db  *sql.DB

	feed     *feed
	changeCh <-chan []*types.Transaction
}

func NewMysqlStore(cfg *config.Config) *MysqlStore {
	f := newFeed()
	return &MysqlStore{
		cfg:      cfg,
		feed:     f,
		changeCh: f.subscribe(nil),
	}
}

func (s *MysqlStore) Init() error {
	if err := s.connect(); err != nil {
		log.Error("Failed to connect to the store database, err = ", err)
		return err
	}
	return s.migrate()
}

func (s *MysqlStore) connect() error {
	host := s.cfg.DbHost
	if host == "" {
		return fmt.Errorf("db host cannot be empty")
	}

	username := s.cfg.DbUsername
	password := s.cfg.DbPassword
	schema := s.cfg.DbSchema

	url := fmt.Sprintf("%s:%s@tcp(%s:%d)/", username, password, host, s.cfg.DbPort)
	database, err := sql.Open("mysql", url)
	if err != nil {
		return err
	}
	if _, err := database.Exec("CREATE DATABASE IF NOT EXISTS " + schema); err != nil {
		return err
	}
	database.Close()

	database, err = sql.Open("mysql",
		fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", username, password, host, s.cfg.DbPort, schema))
	if err != nil {
		return err
	}

	s.db = database
	log.Info("Store database connected")
	return nil
}

func (s *MysqlStore) migrate() error {
	driver, err := mysql.WithInstance(s.db, &mysql.Config{})
	if err != nil {
		return err
	}

	migrationDir, err := MigrationsTempDir()
	if err != nil {
		return err
	}
	defer os.RemoveAll(migrationDir)

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationDir, "mysql", driver)
	if err != nil {
		return err
	}

	m.Log = &dbLogger{}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

const insertColumns = `id, chain, tx_hash, asset_id, fee_asset_id, from_address, to_address,
	tx_type, state, block_number, sequence, fee, value, memo, contract, metadata, direction,
	created_at, updated_at`

func insertArgs(tx *types.Transaction) []interface{} {
	return []interface{}{
		tx.Id, string(tx.AssetId.Chain), tx.Hash, tx.AssetId.Identifier(), tx.FeeAssetId.Identifier(),
		tx.From, tx.To, string(tx.Type), string(tx.State), tx.BlockNumber, tx.Sequence,
		tx.Fee, tx.Value, tx.Memo, tx.Contract, tx.Metadata, string(tx.Direction),
		tx.CreatedAt, tx.UpdatedAt,
	}
}

func (s *MysqlStore) InsertTransactions(txs []*types.Transaction) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, tx := range txs {
		_, err := dbTx.Exec(
			"INSERT IGNORE INTO transactions ("+insertColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)",
			insertArgs(tx)...)
		if err != nil {
			dbTx.Rollback()
			return err
		}
	}
	if err := dbTx.Commit(); err != nil {
		return err
	}

	s.notify(txs)
	return nil
}

func (s *MysqlStore) UpsertTransaction(tx *types.Transaction) error {
	if err := s.upsertIn(s.db, tx); err != nil {
		return err
	}

	s.notify([]*types.Transaction{tx})
	return nil
}

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func (s *MysqlStore) upsertIn(db execer, tx *types.Transaction) error {
	args := insertArgs(tx)
	args = append(args, string(tx.State), tx.Hash, tx.BlockNumber, tx.Fee, tx.UpdatedAt)

	_, err := db.Exec(
		"INSERT INTO transactions ("+insertColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?) "+
			"ON DUPLICATE KEY UPDATE state = ?, tx_hash = ?, block_number = ?, fee = ?, updated_at = ?",
		args...)
	return err
}

func (s *MysqlStore) DeleteTransaction(id string) error {
	_, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	return err
}

func (s *MysqlStore) ApplyBatch(upserts []*types.Transaction, deletes []string) error {
	dbTx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, id := range deletes {
		if _, err := dbTx.Exec("DELETE FROM transactions WHERE id = ?", id); err != nil {
			dbTx.Rollback()
			return err
		}
	}
	for _, tx := range upserts {
		if err := s.upsertIn(dbTx, tx); err != nil {
			dbTx.Rollback()
			return err
		}
	}
	if err := dbTx.Commit(); err != nil {
		return err
	}

	s.notify(upserts)
	return nil
}

const selectColumns = `id, chain, tx_hash, asset_id, fee_asset_id, from_address, to_address,
	tx_type, state, block_number, sequence, fee, value, memo, contract, metadata, direction,
	created_at, updated_at`

func scanTransaction(rows interface{ Scan(...interface{}) error }) (*types.Transaction, error) {
	tx := &types.Transaction{}
	var chain, assetId, feeAssetId, txType, state, direction string
	var metadata sql.NullString

	err := rows.Scan(&tx.Id, &chain, &tx.Hash, &assetId, &feeAssetId, &tx.From, &tx.To,
		&txType, &state, &tx.BlockNumber, &tx.Sequence, &tx.Fee, &tx.Value, &tx.Memo,
		&tx.Contract, &metadata, &direction, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, err
	}

	tx.AssetId, _ = types.AssetIdFromIdentifier(assetId)
	tx.FeeAssetId, _ = types.AssetIdFromIdentifier(feeAssetId)
	tx.Type = types.TxType(txType)
	tx.State = types.TransactionState(state)
	tx.Direction = types.TransactionDirection(direction)
	tx.Metadata = metadata.String
	return tx, nil
}

func (s *MysqlStore) GetTransaction(id string) (*types.Transaction, error) {
	row := s.db.QueryRow("SELECT "+selectColumns+" FROM transactions WHERE id = ?", id)
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *MysqlStore) GetPendingTransactions() ([]*types.Transaction, error) {
	return s.GetTransactionsByState(types.StatePending)
}

func (s *MysqlStore) GetTransactionsByState(state types.TransactionState) ([]*types.Transaction, error) {
	rows, err := s.db.Query(
		"SELECT "+selectColumns+" FROM transactions WHERE state = ? ORDER BY created_at",
		string(state))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txs := make([]*types.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (s *MysqlStore) AddSwapMetadata(txId string, m *types.SwapMetadata) error {
	_, err := s.db.Exec(
		"INSERT INTO swap_metadata (tx_id, from_asset, to_asset, from_value, to_value, provider) "+
			"VALUES (?,?,?,?,?,?) ON DUPLICATE KEY UPDATE to_value = ?",
		txId, m.FromAsset.Identifier(), m.ToAsset.Identifier(), m.FromValue, m.ToValue, m.Provider, m.ToValue)
	return err
}

func (s *MysqlStore) GetSwapMetadata(txId string) (*types.SwapMetadata, error) {
	row := s.db.QueryRow(
		"SELECT from_asset, to_asset, from_value, to_value, provider FROM swap_metadata WHERE tx_id = ?",
		txId)

	m := &types.SwapMetadata{}
	var fromAsset, toAsset string
	err := row.Scan(&fromAsset, &toAsset, &m.FromValue, &m.ToValue, &m.Provider)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m.FromAsset, _ = types.AssetIdFromIdentifier(fromAsset)
	m.ToAsset, _ = types.AssetIdFromIdentifier(toAsset)
	return m, nil
}

func (s *MysqlStore) Changes() <-chan []*types.Transaction {
	return s.changeCh
}

func (s *MysqlStore) ObserveByState(state types.TransactionState) <-chan []*types.Transaction {
	return s.feed.subscribe(matchState(state))
}

func (s *MysqlStore) ObserveTransaction(id string) <-chan []*types.Transaction {
	return s.feed.subscribe(matchId(id))
}

func (s *MysqlStore) notify(txs []*types.Transaction) {
	s.feed.publish(txs)
}
