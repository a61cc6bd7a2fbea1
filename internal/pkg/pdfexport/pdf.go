// Package pdfexport renders registration and student collections as PDF
// documents. Exports are stateless transformations; callers are expected to
// have refused empty collections before rendering.
package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/kaanyilmaz/placehub/internal/app/models"
)

// Table header fill, the same blue the report always used.
var headerFill = [3]int{59, 130, 246}

// RegistrationsReport renders the bulk "Registered Students Report" document.
func RegistrationsReport(registrations []models.Registration) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Registered Students Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total Registrations: %d", len(registrations)))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated on: "+time.Now().Format("02 Jan 2006 15:04"))
	pdf.Ln(10)

	headers := []string{"Name", "Email", "Company", "Department", "10th %", "12th %", "CGPA", "Date"}
	widths := []float64{28, 40, 26, 28, 16, 16, 14, 22}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, reg := range registrations {
		cells := []string{
			reg.StudentName,
			reg.StudentEmail,
			reg.CompanyName,
			reg.Department,
			reg.Percentage10th + "%",
			reg.Percentage12th + "%",
			reg.UGCgpa,
			reg.RegisteredAt.Format("02/01/2006"),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf)
}

// RegistrationDetail renders one registration as a labeled detail sheet.
func RegistrationDetail(reg *models.Registration) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Student Registration Details")
	pdf.Ln(15)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Name: " + reg.StudentName,
		"Email: " + reg.StudentEmail,
		"Company: " + reg.CompanyName,
		"Department: " + reg.Department,
		"10th Percentage: " + reg.Percentage10th + "%",
		"12th Percentage: " + reg.Percentage12th + "%",
		"UG CGPA: " + reg.UGCgpa,
		"Registered On: " + reg.RegisteredAt.Format("02 Jan 2006 15:04"),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(10)
	}

	return output(pdf)
}

// StudentsReport renders the full student list in landscape orientation.
func StudentsReport(students []models.Student) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Students List")
	pdf.Ln(12)

	headers := []string{"Name", "Register No", "Email", "Department", "Year", "CGPA", "Contact", "Placed", "Company"}
	widths := []float64{35, 28, 50, 35, 16, 16, 28, 18, 35}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, s := range students {
		cells := []string{
			s.Name, s.RegisterNumber, s.Email, s.Department,
			s.Year, s.CGPA, s.ContactNumber, s.Placed, s.PlacedCompany,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
