package seeders

import (
	"log"

	"osg-portal/models/branch"

	"gorm.io/gorm"
)

func SeedBranches(db *gorm.DB) {
	log.Printf("🔍 Checking store branch data integrity...")

	branches := []branch.Branch{
		{Code: "MAIN", Name: "Main Branch"},
		{Code: "CLT", Name: "Calicut"},
		{Code: "KCH", Name: "Kochi"},
		{Code: "TVM", Name: "Trivandrum"},
		{Code: "TSR", Name: "Thrissur"},
		{Code: "PKD", Name: "Palakkad"},
		{Code: "KNR", Name: "Kannur"},
		{Code: "KTM", Name: "Kottayam"},
		{Code: "MLP", Name: "Malappuram"},
		{Code: "PMN", Name: "Perinthalmanna"},
		{Code: "TIR", Name: "Tirur"},
		{Code: "VDK", Name: "Vadakara"},
		{Code: "KLM", Name: "Kollam"},
		{Code: "ALP", Name: "Alappuzha"},
		{Code: "MJR", Name: "Manjeri"},
		{Code: "EDP", Name: "Edappal"},
	}

	// Get all existing branch codes from database
	var existingCodes []string
	if err := db.Model(&branch.Branch{}).Pluck("code", &existingCodes).Error; err != nil {
		log.Printf("❌ Failed to fetch existing branch codes: %v", err)
		return
	}

	existingCodesMap := make(map[string]bool)
	for _, code := range existingCodes {
		existingCodesMap[code] = true
	}

	var missingBranches []branch.Branch
	for _, b := range branches {
		if !existingCodesMap[b.Code] {
			missingBranches = append(missingBranches, b)
		}
	}

	if len(missingBranches) == 0 {
		log.Printf("✅ All store branches are already present. No seeding needed.")
		return
	}

	log.Printf("🌱 Seeding %d missing store branches...", len(missingBranches))

	for _, b := range missingBranches {
		if err := db.Create(&b).Error; err != nil {
			log.Printf("❌ Failed to seed branch %s (%s): %v", b.Name, b.Code, err)
		} else {
			log.Printf("✅ Added: %s (%s)", b.Name, b.Code)
		}
	}
}
