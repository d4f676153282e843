package sqlite

import (
	"database/sql"
	"time"

	"github.com/assodanse/assoserver/bot/botstorage"
	dbmodel "github.com/assodanse/assoserver/bot/gen/model"
	"github.com/assodanse/assoserver/bot/gen/table"
	"github.com/assodanse/assoserver/bot/model"
	"github.com/assodanse/assoserver/internal/config"
	sqlite3 "github.com/assodanse/assoserver/internal/migrate"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	var dbUser dbmodel.Users
	err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.Users.AllColumns).
		Query(s.db, &dbUser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbUser, nil), nil
}

type getUserModel struct {
	dbmodel.Users
	UserEvents []dbmodel.UserEvents
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var dest getUserModel
	err := table.Users.
		SELECT(table.Users.AllColumns, table.UserEvents.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.UserEvents, table.UserEvents.UserID.EQ(table.Users.ID))).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &dest)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dest.Users, dest.UserEvents), nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dest []getUserModel
	err := table.Users.
		SELECT(table.Users.AllColumns, table.UserEvents.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.UserEvents, table.UserEvents.UserID.EQ(table.Users.ID))).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(dest))
	for _, u := range dest {
		users = append(users, convertUserToDomain(u.Users, u.UserEvents))
	}
	return users, nil
}

func (s *Storage) Subscribe(user model.User, event model.EventType) error {
	if err := s.Unsubscribe(user, event); err != nil {
		return err
	}
	_, err := table.UserEvents.
		INSERT(table.UserEvents.AllColumns).
		MODEL(dbmodel.UserEvents{
			UserID:    int32(user.ID),
			EventType: string(event),
		}).
		Exec(s.db)
	return err
}

func (s *Storage) Unsubscribe(user model.User, event model.EventType) error {
	_, err := table.UserEvents.
		DELETE().
		WHERE(table.UserEvents.UserID.EQ(sqlite.Int(int64(user.ID))).
			AND(table.UserEvents.EventType.EQ(sqlite.String(string(event))))).
		Exec(s.db)
	return err
}

func (s *Storage) Log(user model.User, message string) error {
	_, err := table.Logs.
		INSERT(table.Logs.UserID, table.Logs.Message, table.Logs.CreatedAt).
		MODEL(dbmodel.Logs{
			UserID:    int32(user.ID),
			Message:   message,
			CreatedAt: time.Now(),
		}).
		Exec(s.db)
	return err
}

func convertUserFromDomain(user model.User) dbmodel.Users {
	return dbmodel.Users{
		ID:        int32(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		Role:      int32(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func convertUserToDomain(user dbmodel.Users, events []dbmodel.UserEvents) model.User {
	converted := model.User{
		ID:        int(user.ID),
		FirstName: user.FirstName,
		Username:  user.Username,
		Role:      model.UserRole(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	for _, event := range events {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(event.EventType))
	}
	return converted
}
