package postgres

import (
	"context"
	"errors"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, nome, login, senha, criado_em, alterado_em`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, in repository.CreateUserInput) (*domain.User, error) {
	query := `
		INSERT INTO usuarios (nome, login, senha)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, query, in.Name, in.Login, in.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return nil, domain.ErrLoginTaken
		}
		return nil, storageErr("insert user", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE id = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("select user by id", err)
	}
	return u, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE login = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("select user by login", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, in repository.UpdateUserInput) (*domain.User, error) {
	query := `
		UPDATE usuarios
		SET    nome        = COALESCE($2, nome),
		       senha       = COALESCE($3, senha),
		       alterado_em = NOW()
		WHERE  id = $1
		RETURNING ` + userColumns

	u, err := scanUser(r.pool.QueryRow(ctx, query, id, in.Name, in.PasswordHash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr("update user", err)
	}
	return u, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Login, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
