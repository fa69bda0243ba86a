package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"imoveis-scraper/models"
	"imoveis-scraper/utils"
)

// InsightService computes and prints a terminal summary of the harvested
// dataset.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(records []*models.Listing) *models.InsightReport {
	report := &models.InsightReport{
		RecordsByDomain: make(map[string]int),
	}

	if len(records) == 0 {
		return report
	}

	report.TotalRecords = len(records)

	var priced []*models.Listing
	for _, r := range records {
		report.RecordsByDomain[r.Domain]++
		if r.Price != nil {
			priced = append(priced, r)
		}
	}
	report.PricedRecords = len(priced)

	if len(priced) > 0 {
		report.MinPrice = *priced[0].Price
		report.MaxPrice = *priced[0].Price
		report.MostExpensive = priced[0]
		var total float64
		for _, r := range priced {
			total += *r.Price
			if *r.Price < report.MinPrice {
				report.MinPrice = *r.Price
			}
			if *r.Price > report.MaxPrice {
				report.MaxPrice = *r.Price
				report.MostExpensive = r
			}
		}
		report.AveragePrice = round2(total / float64(len(priced)))
		report.MinPrice = round2(report.MinPrice)
		report.MaxPrice = round2(report.MaxPrice)
	}

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🏠 HARVEST SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total records          : \033[1m%d\033[0m\n", r.TotalRecords)
	fmt.Printf("  Records with a price   : \033[1m%d\033[0m\n", r.PricedRecords)
	fmt.Println()

	if len(r.RecordsByDomain) > 0 {
		fmt.Printf("\033[1;33m  Records per domain\033[0m\n")
		fmt.Printf("  %s\n", thin)
		domains := make([]string, 0, len(r.RecordsByDomain))
		for d := range r.RecordsByDomain {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		for _, d := range domains {
			fmt.Printf("  %-34s %d\n", d, r.RecordsByDomain[d])
		}
		fmt.Println()
	}

	if r.PricedRecords > 0 {
		fmt.Printf("\033[1;33m  Price statistics (R$)\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Average : %.2f\n", r.AveragePrice)
		fmt.Printf("  Minimum : %.2f\n", r.MinPrice)
		fmt.Printf("  Maximum : %.2f\n", r.MaxPrice)
		if r.MostExpensive != nil && r.MostExpensive.PropertyURL != nil {
			fmt.Printf("  Most expensive listing : %s\n", *r.MostExpensive.PropertyURL)
		}
		fmt.Println()
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
