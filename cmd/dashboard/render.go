package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/aggregating"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/sessioning"
	"github.com/vfg2006/contoso-dashboard-client/pkg/utils"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	promptColor  = color.New(color.FgWhite, color.Bold)
)

// formatDate reapresenta uma data da API (yyyy-MM-dd) no formato local
func formatDate(s string) string {
	date, err := utils.ParseDate(s)
	if err != nil || date == nil || date.IsZero() {
		return s
	}
	return date.Format("02/01/2006")
}

func formatMonth(s string) string {
	month, err := utils.ParseMonth(s)
	if err != nil {
		return s
	}
	return month.Format("01/2006")
}

func renderBanner() {
	titleColor.Println("Contoso Sales - painel de vendas")
}

func renderMenu(title string, options []string) {
	fmt.Println()
	titleColor.Println(title)
	for _, opt := range options {
		fmt.Println("  " + opt)
	}
}

func renderPrompt(label string) {
	promptColor.Printf("%s: ", label)
}

func renderInfo(msg string) {
	warnColor.Println(msg)
}

func renderSuccess(msg string) {
	successColor.Println(msg)
}

func renderError(err error) {
	errorColor.Println(err.Error())
}

func renderLoginError(err error) {
	switch {
	case sessioning.IsCredentialsError(err):
		errorColor.Println("Usuário ou senha incorretos")
	case sessioning.IsServerUnavailable(err):
		errorColor.Println("Servidor indisponível, tente novamente")
	default:
		renderError(err)
	}
}

func renderSnapshot(s *domain.DashboardSnapshot) {
	fmt.Println()
	titleColor.Printf("Painel (%s) - geração %d, atualizado às %s\n",
		s.Filter.QueryValue(), s.Generation, s.FetchedAt.Format("15:04:05"))

	fmt.Printf("  Vendas totais:  %s\n", utils.FormatCurrency(s.KPIs.TotalSales))
	fmt.Printf("  Pedidos:        %d\n", s.KPIs.TotalOrders)
	fmt.Printf("  Ticket médio:   %s\n", utils.FormatCurrency(s.KPIs.AverageTicket))

	if len(s.Financial) > 0 {
		fmt.Println()
		titleColor.Println("Série financeira mensal")
		for _, p := range s.Financial {
			fmt.Printf("  %s  vendas %-14s custos %-14s ganho %s\n",
				formatMonth(p.Month),
				utils.FormatCurrency(p.Sales),
				utils.FormatCurrency(p.Costs),
				utils.FormatCurrency(p.Profit))
		}
	}

	if len(s.CategoryProfits) > 0 {
		fmt.Println()
		titleColor.Println("Ganho líquido por categoria")
		for _, c := range s.CategoryProfits {
			fmt.Printf("  %-24s %s\n", c.Category, utils.FormatCurrency(c.NetProfit))
		}
	}

	if len(s.TopCustomers) > 0 {
		fmt.Println()
		titleColor.Println("Maiores clientes")
		for i, c := range s.TopCustomers {
			fmt.Printf("  %2d. %-32s %s\n", i+1, c.Customer, utils.FormatCurrency(c.TotalPurchased))
		}
	}

	if len(s.RecentOrders) > 0 {
		fmt.Println()
		titleColor.Println("Últimos pedidos")
		for _, o := range s.RecentOrders {
			fmt.Printf("  #%-8d %s  %-28s %s\n", o.OrderKey, formatDate(o.Date), o.Customer, utils.FormatCurrency(o.Total))
		}
	}
}

// renderGeoTreemap imprime a hierarquia país > região como uma árvore textual
func renderGeoTreemap(records []domain.GeoRecord) {
	nodes := aggregating.BuildGeoHierarchy(records)
	if len(nodes) == 0 {
		renderInfo("Nenhum dado geográfico no período")
		return
	}

	fmt.Println()
	titleColor.Println("Clientes por país e região")
	for _, root := range aggregating.Roots(nodes) {
		fmt.Printf("  %-28s %6.0f clientes\n", root.Label, root.Value)
		for _, child := range aggregating.Children(nodes, root.ID) {
			fmt.Printf("    %-26s %6.0f\n", child.Label, child.Value)
		}
	}
}

func renderTopProducts(products []domain.ProductSales) {
	fmt.Println()
	titleColor.Println("Top produtos por receita")
	for i, p := range products {
		fmt.Printf("  %2d. %-40s %s\n", i+1, p.Product, utils.FormatCurrency(p.Sales))
	}
}

func renderGlobalSales(sales []domain.CountrySales) {
	fmt.Println()
	titleColor.Println("Vendas por país")
	for _, s := range sales {
		fmt.Printf("  %-28s %s\n", s.Country, utils.FormatCurrency(s.Sales))
	}
}

func renderProducts(title string, products []domain.Product) {
	fmt.Println()
	titleColor.Println(title)
	if len(products) == 0 {
		renderInfo("Nenhum produto encontrado")
		return
	}

	for i, p := range products {
		fmt.Printf("  %2d. %-40s %-18s %s\n", i+1, p.Name, p.Category, utils.FormatCurrency(p.UnitPrice))
	}
}

func renderOrders(title string, orders []domain.Order) {
	fmt.Println()
	titleColor.Println(title)
	if len(orders) == 0 {
		renderInfo("Nenhum pedido encontrado")
		return
	}

	for _, o := range orders {
		fmt.Printf("  #%-8d %s  %2d itens  %s\n", o.OrderKey, formatDate(o.Date), o.ItemCount, utils.FormatCurrency(o.Total))
	}
}

func renderCart(lines []domain.CartLine, total float64) {
	fmt.Println()
	titleColor.Println("Carrinho")
	if len(lines) == 0 {
		renderInfo("Carrinho vazio")
		return
	}

	for _, l := range lines {
		fmt.Printf("  [%s] %-40s %s\n", l.LineID, l.Product.Name, utils.FormatCurrency(l.Product.UnitPrice))
	}
	fmt.Println("  " + strings.Repeat("-", 48))
	promptColor.Printf("  Total: %s\n", utils.FormatCurrency(total))
}

func renderNotifications(items []domain.Notification) {
	fmt.Println()
	titleColor.Println("Notificações")
	if len(items) == 0 {
		renderInfo("Nenhuma notificação")
		return
	}

	for _, n := range items {
		c := warnColor
		switch n.Severity {
		case domain.SeveritySuccess:
			c = successColor
		case domain.SeverityInfo:
			c = promptColor
		}
		c.Printf("  [%s] %s - %s (%s)\n", n.ID, n.Title, n.Message, n.CreatedAgo)
	}
}
