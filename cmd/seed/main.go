// seed applies migrations, then inserts a demo user with a few recipes into
// the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/infrastructure/postgres"
	"github.com/joho/godotenv"
)

const (
	seedLogin    = "demo"
	seedPassword = "demo123"
)

type recipeSpec struct {
	name         string
	category     string
	prepMinutes  int
	servings     int
	ingredients  string
	instructions string
}

var recipes = []recipeSpec{
	{
		name: "Bolo de cenoura", category: "Bolos e tortas doces", prepMinutes: 50, servings: 12,
		ingredients:  "3 cenouras médias\n4 ovos\n1 xícara de óleo\n2 xícaras de açúcar\n2 xícaras de farinha de trigo\n1 colher de fermento",
		instructions: "Bata no liquidificador as cenouras, os ovos e o óleo. Misture o açúcar e a farinha, junte o fermento e asse em forno médio por 40 minutos.",
	},
	{
		name: "Frango grelhado", category: "Aves", prepMinutes: 25, servings: 2,
		ingredients:  "2 filés de frango\nsal\nalho\nlimão",
		instructions: "Tempere os filés com sal, alho e limão. Grelhe em frigideira quente por 6 minutos de cada lado.",
	},
	{
		name: "Salada verde", category: "Saladas, molhos e acompanhamentos", prepMinutes: 10, servings: 4,
		ingredients:  "alface\nrúcula\ntomate cereja\nazeite",
		instructions: "Lave as folhas, corte os tomates ao meio e tempere com azeite e sal na hora de servir.",
	},
}

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, slog.Default()); err != nil {
		pool.Close()
		log.Fatalf("migrate: %v", err)
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		pool.Close()
		log.Fatalf("hash password: %v", err)
	}

	// Upsert demo user; re-running resets the password
	var userID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO usuarios (nome, login, senha)
		VALUES ('Usuário Demo', $1, $2)
		ON CONFLICT (login) DO UPDATE SET senha = EXCLUDED.senha, alterado_em = NOW()
		RETURNING id`,
		seedLogin, hash,
	).Scan(&userID)
	if err != nil {
		pool.Close()
		log.Fatalf("upsert user: %v", err)
	}

	// Insert recipes, skip any the demo user already has (idempotent re-runs)
	var inserted, skipped int
	for _, spec := range recipes {
		tag, err := pool.Exec(ctx, `
			INSERT INTO receitas (
				id_usuarios, id_categorias, nome, tempo_preparo_minutos,
				porcoes, modo_preparo, ingredientes
			)
			SELECT $1, (SELECT id FROM categorias WHERE nome = $2), $3, $4, $5, $6, $7
			WHERE NOT EXISTS (
				SELECT 1 FROM receitas WHERE id_usuarios = $1 AND nome = $3
			)`,
			userID, spec.category, spec.name, spec.prepMinutes,
			spec.servings, spec.instructions, spec.ingredients,
		)
		if err != nil {
			pool.Close()
			log.Fatalf("insert recipe %q: %v", spec.name, err)
		}
		if tag.RowsAffected() == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Login:           %s\n", seedLogin)
	fmt.Printf("  Password:        %s\n", seedPassword)
	fmt.Printf("  User ID:         %d\n", userID)
	fmt.Printf("  Recipes created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1: log in")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:3000/api/auth/login \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"login\":\"%s\",\"senha\":\"%s\"}'\n", seedLogin, seedPassword)
	fmt.Println()
	fmt.Println("  Step 2: list recipes and download one as PDF")
	fmt.Println()
	fmt.Println("    export JWT=eyJ...")
	fmt.Println("    curl -s http://localhost:3000/api/receitas -H \"Authorization: Bearer $JWT\"")
	fmt.Println("    curl -s -OJ http://localhost:3000/api/receitas/RECIPE_ID/relatorio -H \"Authorization: Bearer $JWT\"")
}
