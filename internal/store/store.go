// Package store persists the wallet and a ledger of finished sessions in
// sqlite, so every payout can be traced back to the presses that earned it.
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"git.lost.host/meutraa/encore/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNegativeAmount = errors.New("currency amount must not be negative")

type Store struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// Record is one finished session
type Record struct {
	ID           string
	Sum          string
	Title        string
	Mode         string
	Outcome      string
	Reason       string
	Score        int
	Hype         int
	PlayerHealth int
	TargetHealth int
	Hits         int
	Misses       int
	EmptyPresses int
	MaxCombo     int
	Cash         int
	Inputs       []game.Input
	CreatedAt    time.Time
}

const schema = `
create table if not exists wallet
  (
	  id integer not null primary key check (id = 1),
	  balance integer not null
  );
insert or ignore into wallet(id, balance) values (1, 0);
create table if not exists sessions
  (
	  id text not null primary key,
	  sum text,
	  title text,
	  mode text,
	  outcome text,
	  reason text,
	  score integer,
	  hype integer,
	  player_health integer,
	  target_health integer,
	  hits integer,
	  misses integer,
	  empty_presses integer,
	  max_combo integer,
	  cash integer,
	  inputs blob,
	  created_at timestamp
  );
`

func Open(path string, log logrus.FieldLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if nil != err {
		return nil, errors.Wrapf(err, "unable to open %v", path)
	}
	if _, err := db.Exec(schema); nil != err {
		db.Close()
		return nil, errors.Wrap(err, "unable to create tables")
	}
	if nil == log {
		log = logrus.StandardLogger()
	}
	return &Store{db: db, log: log.WithField("db", path)}, nil
}

func (s *Store) Close() error {
	if nil != s.db {
		return s.db.Close()
	}
	return nil
}

// AddCurrency credits the wallet. A zero amount is a no-op.
func (s *Store) AddCurrency(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	if amount == 0 {
		return nil
	}
	if _, err := s.db.Exec("update wallet set balance = balance + ? where id = 1", amount); nil != err {
		return errors.Wrap(err, "unable to credit wallet")
	}
	s.log.WithField("amount", amount).Info("wallet credited")
	return nil
}

func (s *Store) Balance() (int, error) {
	var balance int
	if err := s.db.QueryRow("select balance from wallet where id = 1").Scan(&balance); nil != err {
		return 0, errors.Wrap(err, "unable to read wallet")
	}
	return balance, nil
}

// Save records a finished session and assigns it an id
func (s *Store) Save(r *Record) error {
	data, err := json.Marshal(compactInputs(r.Inputs))
	if nil != err {
		return errors.Wrap(err, "unable to marshal inputs")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err = s.db.Exec(`insert into sessions(
		id, sum, title, mode, outcome, reason, score, hype, player_health, target_health,
		hits, misses, empty_presses, max_combo, cash, inputs, created_at
	) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Sum, r.Title, r.Mode, r.Outcome, r.Reason, r.Score, r.Hype, r.PlayerHealth, r.TargetHealth,
		r.Hits, r.Misses, r.EmptyPresses, r.MaxCombo, r.Cash, data, r.CreatedAt,
	)
	if nil != err {
		return errors.Wrap(err, "unable to save session")
	}
	s.log.WithFields(logrus.Fields{"id": r.ID, "cash": r.Cash}).Info("session saved")
	return nil
}

// Sessions lists the ledger for a chart, oldest first
func (s *Store) Sessions(sum string) ([]Record, error) {
	rows, err := s.db.Query(`select
		id, sum, title, mode, outcome, reason, score, hype, player_health, target_health,
		hits, misses, empty_presses, max_combo, cash, inputs, created_at
		from sessions where sum = ? order by created_at, rowid`, sum)
	if nil != err {
		return nil, errors.Wrap(err, "unable to load sessions")
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		var inputs []byte
		if err := rows.Scan(
			&r.ID, &r.Sum, &r.Title, &r.Mode, &r.Outcome, &r.Reason, &r.Score, &r.Hype,
			&r.PlayerHealth, &r.TargetHealth, &r.Hits, &r.Misses, &r.EmptyPresses,
			&r.MaxCombo, &r.Cash, &inputs, &r.CreatedAt,
		); nil != err {
			return nil, errors.Wrap(err, "unable to scan session")
		}
		var ns []InputsCompact
		if err := json.Unmarshal(inputs, &ns); nil != err {
			s.log.WithError(err).WithField("id", r.ID).Warn("unable to unmarshal input history")
		} else {
			r.Inputs = uncompactInputs(ns)
		}
		records = append(records, r)
	}
	return records, errors.Wrap(rows.Err(), "unable to read sessions")
}
