package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"osg-portal/database"
	"osg-portal/models/purchase"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/migrate.go migrate                    - Run database migrations and seeders")
		fmt.Println("  go run tools/migrate.go import-purchases file.csv  - Import the purchase index from CSV")
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		fmt.Println("🚀 Running database migrations...")
		if _, err := database.InitDB(); err != nil {
			fmt.Printf("❌ Migration failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Migration completed successfully!")

	case "import-purchases":
		if len(os.Args) < 3 {
			fmt.Println("Please provide the CSV file to import")
			fmt.Println("Example: go run tools/migrate.go import-purchases purchases.csv")
			return
		}

		filename := os.Args[2]
		fmt.Printf("📥 Importing purchase index from: %s\n", filename)

		count, err := importPurchases(filename)
		if err != nil {
			fmt.Printf("❌ Import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Imported %d purchase rows\n", count)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, import-purchases")
	}
}

// importPurchases loads the exported store purchase sheet. Expected columns:
// customer name, mobile number, product, model, serial number, invoice number,
// OSID, branch, purchase date. The first row is treated as a header.
func importPurchases(filename string) (int, error) {
	db, err := database.InitDB()
	if err != nil {
		return 0, err
	}

	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	count := 0
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if first {
			first = false
			continue
		}
		if len(record) < 2 {
			continue
		}

		field := func(i int) string {
			if i < len(record) {
				return record[i]
			}
			return ""
		}

		row := purchase.Purchase{
			CustomerName:  field(0),
			MobileNumber:  field(1),
			Product:       field(2),
			Model:         field(3),
			SerialNumber:  field(4),
			InvoiceNumber: field(5),
			OSID:          field(6),
			Branch:        field(7),
			PurchaseDate:  field(8),
		}
		if row.MobileNumber == "" {
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			return count, fmt.Errorf("insert row for %s: %w", row.MobileNumber, err)
		}
		count++
	}

	return count, nil
}
