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

// recipeSelect reads from a relation aliased "r" so the same projection
// serves plain selects and the INSERT/UPDATE ... RETURNING CTEs.
const recipeSelect = `
	SELECT r.id, r.id_usuarios, r.id_categorias, r.nome, r.tempo_preparo_minutos,
	       r.porcoes, r.modo_preparo, r.ingredientes, r.criado_em, r.alterado_em,
	       c.id, c.nome
	FROM   r
	LEFT JOIN categorias c ON c.id = r.id_categorias`

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

func (r *RecipeRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Recipe, error) {
	query := `WITH r AS (SELECT * FROM receitas WHERE id_usuarios = $1)` + recipeSelect + `
	ORDER BY r.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, storageErr("select recipes", err)
	}
	defer rows.Close()

	recipes := []*domain.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, storageErr("scan recipe", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select recipes", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) GetByID(ctx context.Context, id, userID int64) (*domain.Recipe, error) {
	query := `WITH r AS (SELECT * FROM receitas WHERE id = $1 AND id_usuarios = $2)` + recipeSelect

	rec, err := scanRecipe(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, storageErr("select recipe", err)
	}
	return rec, nil
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	query := `
	WITH r AS (
		INSERT INTO receitas (
			id_usuarios, id_categorias, nome, tempo_preparo_minutos,
			porcoes, modo_preparo, ingredientes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *
	)` + recipeSelect

	created, err := scanRecipe(r.pool.QueryRow(ctx, query,
		recipe.UserID,
		recipe.CategoryID,
		recipe.Name,
		recipe.PrepTimeMinutes,
		recipe.Servings,
		recipe.Instructions,
		recipe.Ingredients,
	))
	if err != nil {
		return nil, translateWriteErr("insert recipe", err)
	}
	return created, nil
}

func (r *RecipeRepository) Update(ctx context.Context, id, userID int64, in repository.UpdateRecipeInput) (*domain.Recipe, error) {
	query := `
	WITH r AS (
		UPDATE receitas
		SET    nome                  = COALESCE($3, nome),
		       id_categorias         = CASE WHEN $4::boolean THEN $5::bigint ELSE id_categorias END,
		       tempo_preparo_minutos = COALESCE($6, tempo_preparo_minutos),
		       porcoes               = COALESCE($7, porcoes),
		       modo_preparo          = COALESCE($8, modo_preparo),
		       ingredientes          = COALESCE($9, ingredientes),
		       alterado_em           = NOW()
		WHERE  id = $1 AND id_usuarios = $2
		RETURNING *
	)` + recipeSelect

	updated, err := scanRecipe(r.pool.QueryRow(ctx, query,
		id,
		userID,
		in.Name,
		in.SetCategory,
		in.CategoryID,
		in.PrepTimeMinutes,
		in.Servings,
		in.Instructions,
		in.Ingredients,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, translateWriteErr("update recipe", err)
	}
	return updated, nil
}

func (r *RecipeRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM receitas WHERE id = $1 AND id_usuarios = $2`, id, userID)
	if err != nil {
		return storageErr("delete recipe", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// translateWriteErr maps a category foreign-key race (deleted between the
// usecase's check and the write) to the same 404 the check would give.
func translateWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return domain.ErrCategoryNotFound
	}
	return storageErr(op, err)
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var (
		rec     domain.Recipe
		catID   *int64
		catName *string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.CategoryID, &rec.Name, &rec.PrepTimeMinutes,
		&rec.Servings, &rec.Instructions, &rec.Ingredients, &rec.CreatedAt, &rec.UpdatedAt,
		&catID, &catName,
	)
	if err != nil {
		return nil, err
	}
	if catID != nil {
		rec.Category = &domain.Category{ID: *catID, Name: catName}
	}
	return &rec, nil
}
