// Package report renders recipes as printable PDF documents.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	dateLayout = "02/01/2006"
	lineHeight = 6.0
)

// Renderer builds A4 recipe sheets with the core PDF fonts.
type Renderer struct {
	compress bool
}

func NewRenderer() *Renderer {
	return &Renderer{compress: true}
}

// RecipePDF lays out a title, the optional facts (category, prep time,
// servings), ingredients, instructions and the audit dates.
func (r *Renderer) RecipePDF(recipe *domain.Recipe) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCreator("recipes-api", true)
	// core fonts are cp1252; accented Portuguese text must be translated
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := "Receita: " + deref(recipe.Name)
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "", 25)
	pdf.MultiCell(0, 11, tr(title), "", "C", false)
	pdf.Ln(lineHeight)

	pdf.SetFont(fontFamily, "", 14)
	if recipe.Category != nil {
		fact(pdf, tr("Categoria: "+deref(recipe.Category.Name)))
	}
	if recipe.PrepTimeMinutes != nil && *recipe.PrepTimeMinutes > 0 {
		fact(pdf, tr(fmt.Sprintf("Tempo de Preparo: %d minutos", *recipe.PrepTimeMinutes)))
	}
	if recipe.Servings != nil && *recipe.Servings > 0 {
		fact(pdf, tr("Porções: "+strconv.FormatInt(*recipe.Servings, 10)))
	}

	ingredients := deref(recipe.Ingredients)
	if ingredients == "" {
		ingredients = "Não informado"
	}
	section(pdf, tr("Ingredientes:"), tr(ingredients))
	section(pdf, tr("Modo de Preparo:"), tr(recipe.Instructions))

	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(0, 5, tr("Criado em: "+recipe.CreatedAt.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Última atualização: "+recipe.UpdatedAt.Format(dateLayout)), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render recipe pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func fact(pdf *fpdf.Fpdf, text string) {
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.Ln(lineHeight / 2)
}

func section(pdf *fpdf.Fpdf, heading, body string) {
	pdf.SetFont(fontFamily, "U", 16)
	pdf.CellFormat(0, 9, heading, "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, lineHeight, body, "", "L", false)
	pdf.Ln(lineHeight)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
