package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	models "shop-management/model"
	"shop-management/service"
)

// Menu is the interactive shell over service.ServiceInterface. It reads a
// choice, calls into the core, and prints the reported outcome; it never
// touches the backing stores directly.
type Menu struct {
	svc service.ServiceInterface
	in  *bufio.Scanner
	out io.Writer
}

// NewMenu returns a Menu reading choices from in and writing to out.
func NewMenu(svc service.ServiceInterface, in io.Reader, out io.Writer) *Menu {
	return &Menu{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run drives the top-level menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\nMenu:")
		fmt.Fprintln(m.out, "1. Register")
		fmt.Fprintln(m.out, "2. Log in")
		fmt.Fprintln(m.out, "3. Exit")
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.register()
		case "2":
			m.login()
		case "3":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

// --- input helpers ---

// prompt prints label and returns the next input line. ok is false once the
// input stream ends.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptPassword asks for a password twice until both entries match.
func (m *Menu) promptPassword(label string) (string, bool) {
	for {
		password, ok := m.prompt(label)
		if !ok {
			return "", false
		}
		confirm, ok := m.prompt("Repeat password: ")
		if !ok {
			return "", false
		}
		if password == confirm {
			return password, true
		}
		fmt.Fprintln(m.out, "Passwords do not match. Please try again.")
	}
}

func (m *Menu) promptRole() (string, bool) {
	for {
		role, ok := m.prompt("Role (user/admin): ")
		if !ok {
			return "", false
		}
		if _, err := models.ParseRole(role); err == nil {
			return role, true
		}
		fmt.Fprintln(m.out, "Invalid role. Enter 'user' or 'admin'.")
	}
}

// --- top-level flows ---

func (m *Menu) register() {
	username, ok := m.prompt("Username: ")
	if !ok {
		return
	}
	password, ok := m.promptPassword("Password: ")
	if !ok {
		return
	}
	role, ok := m.promptRole()
	if !ok {
		return
	}
	if err := m.svc.Register(username, password, role); err != nil {
		fmt.Fprintf(m.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Registration successful!")
}

func (m *Menu) login() {
	username, ok := m.prompt("Username: ")
	if !ok {
		return
	}
	password, ok := m.prompt("Password: ")
	if !ok {
		return
	}
	account, err := m.svc.Login(username, password)
	if err != nil {
		fmt.Fprintf(m.out, "Login failed: %v\n", err)
		return
	}
	if account.IsOperator() {
		m.operatorMenu(account)
	} else {
		m.shopperMenu(account)
	}
}

// --- operator menus ---

func (m *Menu) operatorMenu(account *models.Account) {
	for {
		fmt.Fprintln(m.out, "\nOperator menu:")
		fmt.Fprintln(m.out, "1. View products")
		fmt.Fprintln(m.out, "2. Manage accounts")
		fmt.Fprintln(m.out, "3. Manage products")
		fmt.Fprintln(m.out, "4. View statistics")
		fmt.Fprintln(m.out, "5. Log out")
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.showProducts(m.svc.Products(""))
		case "2":
			m.manageAccounts()
		case "3":
			m.manageProducts()
		case "4":
			m.showStatistics()
		case "5":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) manageAccounts() {
	for {
		m.listAccounts()
		fmt.Fprintln(m.out, "\nAccount management:")
		fmt.Fprintln(m.out, "1. Add account")
		fmt.Fprintln(m.out, "2. Change account role")
		fmt.Fprintln(m.out, "3. Change account password")
		fmt.Fprintln(m.out, "4. Delete account")
		fmt.Fprintln(m.out, "5. Back")
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.register()
		case "2":
			username, ok := m.prompt("Username to change role for: ")
			if !ok {
				return
			}
			role, ok := m.prompt("New role (user/admin): ")
			if !ok {
				return
			}
			if err := m.svc.ChangeRole(username, role); err != nil {
				fmt.Fprintf(m.out, "Could not change role: %v\n", err)
			} else {
				fmt.Fprintf(m.out, "Role of %s changed to %s.\n", username, role)
			}
		case "3":
			username, ok := m.prompt("Username to change password for: ")
			if !ok {
				return
			}
			password, ok := m.promptPassword("New password: ")
			if !ok {
				return
			}
			if err := m.svc.ChangePassword(username, password); err != nil {
				fmt.Fprintf(m.out, "Could not change password: %v\n", err)
			} else {
				fmt.Fprintf(m.out, "Password of %s changed.\n", username)
			}
		case "4":
			username, ok := m.prompt("Username to delete: ")
			if !ok {
				return
			}
			if err := m.svc.DeleteAccount(username); err != nil {
				fmt.Fprintf(m.out, "Could not delete account: %v\n", err)
			} else {
				fmt.Fprintf(m.out, "Account %s deleted.\n", username)
			}
		case "5":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) listAccounts() {
	accounts := m.svc.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "No registered accounts.")
		return
	}
	fmt.Fprintln(m.out, "\nAccounts:")
	for i, a := range accounts {
		fmt.Fprintf(m.out, "%d. Username: %s, Role: %s\n", i+1, a.Username, a.Role)
	}
}

func (m *Menu) manageProducts() {
	for {
		fmt.Fprintln(m.out, "\nProduct management:")
		fmt.Fprintln(m.out, "1. Add product")
		fmt.Fprintln(m.out, "2. Delete product")
		fmt.Fprintln(m.out, "3. Edit product")
		fmt.Fprintln(m.out, "4. Back")
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.addProduct()
		case "2":
			name, ok := m.prompt("Product name to delete: ")
			if !ok {
				return
			}
			removed, err := m.svc.DeleteProduct(name)
			if err != nil {
				fmt.Fprintf(m.out, "Could not delete product: %v\n", err)
			} else {
				fmt.Fprintf(m.out, "Removed %d item(s) named %q.\n", removed, name)
			}
		case "3":
			m.editProduct()
		case "4":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

func (m *Menu) addProduct() {
	name, ok := m.prompt("Product name: ")
	if !ok {
		return
	}
	var price float64
	for {
		text, ok := m.prompt("Price: ")
		if !ok {
			return
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v <= 0 {
			fmt.Fprintln(m.out, "Please enter a number greater than 0.")
			continue
		}
		price = v
		break
	}
	var quantity int
	for {
		text, ok := m.prompt("Quantity: ")
		if !ok {
			return
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < 0 {
			fmt.Fprintln(m.out, "Please enter a whole number of 0 or more.")
			continue
		}
		quantity = v
		break
	}
	if err := m.svc.AddProduct(name, price, quantity); err != nil {
		fmt.Fprintf(m.out, "Could not add product: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Product added!")
}

func (m *Menu) editProduct() {
	m.showProducts(m.svc.Products(""))
	text, ok := m.prompt("Number of the product to edit: ")
	if !ok {
		return
	}
	number, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid product number.")
		return
	}
	newName, ok := m.prompt("New name (leave empty to keep): ")
	if !ok {
		return
	}
	newPrice, ok := m.prompt("New price (leave empty to keep): ")
	if !ok {
		return
	}
	newQuantity, ok := m.prompt("New quantity (leave empty to keep): ")
	if !ok {
		return
	}
	if err := m.svc.EditProduct(number-1, newName, newPrice, newQuantity); err != nil {
		fmt.Fprintf(m.out, "Edit finished with problems: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Product updated.")
}

func (m *Menu) showStatistics() {
	stats, ok := m.svc.Statistics()
	if !ok {
		fmt.Fprintln(m.out, "Statistics are not available yet (no purchases).")
		return
	}
	fmt.Fprintln(m.out, "\nStatistics:")
	fmt.Fprintf(m.out, "Total purchases: %d\n", stats.TotalPurchases)
	fmt.Fprintf(m.out, "Total revenue: %.2f\n", stats.TotalRevenue)
	fmt.Fprintf(m.out, "Average purchase value: %.2f\n", stats.AveragePurchaseValue)
}

// --- shopper menus ---

func (m *Menu) shopperMenu(account *models.Account) {
	for {
		fmt.Fprintln(m.out, "\nShopper menu:")
		fmt.Fprintln(m.out, "1. View products")
		fmt.Fprintln(m.out, "2. Add to cart")
		fmt.Fprintln(m.out, "3. View cart")
		fmt.Fprintln(m.out, "4. Checkout")
		fmt.Fprintln(m.out, "5. Purchase history")
		fmt.Fprintln(m.out, "6. Log out")
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			m.browseProducts()
		case "2":
			m.addToCart(account.Username)
		case "3":
			m.viewCart(account.Username)
		case "4":
			m.checkout(account.Username)
		case "5":
			m.showHistory(account.Username)
		case "6":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
	}
}

var catalogSortChoices = map[string]string{
	"1": models.SortPriceAsc,
	"2": models.SortPriceDesc,
	"3": models.SortQuantityAsc,
	"4": models.SortQuantityDesc,
	"5": models.SortNameAsc,
	"6": models.SortNameDesc,
	"7": "",
}

func (m *Menu) browseProducts() {
	for {
		fmt.Fprintln(m.out, "\nSort products:")
		fmt.Fprintln(m.out, "1. By price (ascending)")
		fmt.Fprintln(m.out, "2. By price (descending)")
		fmt.Fprintln(m.out, "3. By quantity (ascending)")
		fmt.Fprintln(m.out, "4. By quantity (descending)")
		fmt.Fprintln(m.out, "5. By name (A-Z)")
		fmt.Fprintln(m.out, "6. By name (Z-A)")
		fmt.Fprintln(m.out, "7. No sorting")
		choice, ok := m.prompt("Choose a sort order: ")
		if !ok {
			return
		}
		key, recognized := catalogSortChoices[choice]
		if !recognized {
			fmt.Fprintln(m.out, "Invalid choice. Please pick a number from 1 to 7.")
			continue
		}
		m.showProducts(m.svc.Products(key))
		return
	}
}

func (m *Menu) showProducts(items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No products in stock.")
		return
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 46))
	fmt.Fprintf(m.out, "%-4s %-20s %-10s %-10s\n", "#", "Name", "Price", "Quantity")
	fmt.Fprintln(m.out, strings.Repeat("-", 46))
	for i, it := range items {
		fmt.Fprintf(m.out, "%-4d %-20s %-10.2f %-10d\n", i+1, it.Name, it.Price, it.Quantity)
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 46))
}

func (m *Menu) addToCart(username string) {
	m.showProducts(m.svc.Products(""))
	text, ok := m.prompt("Product number: ")
	if !ok {
		return
	}
	number, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid product number.")
		return
	}
	if err := m.svc.AddToCart(username, number-1); err != nil {
		fmt.Fprintf(m.out, "Could not add to cart: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Item added to cart!")
}

var cartSortChoices = map[string]string{
	"1": models.SortPriceAsc,
	"2": models.SortPriceDesc,
	"3": models.SortNameAsc,
	"4": models.SortNameDesc,
	"5": "",
}

func (m *Menu) viewCart(username string) {
	for {
		fmt.Fprintln(m.out, "\nSort cart:")
		fmt.Fprintln(m.out, "1. By price (ascending)")
		fmt.Fprintln(m.out, "2. By price (descending)")
		fmt.Fprintln(m.out, "3. By name (A-Z)")
		fmt.Fprintln(m.out, "4. By name (Z-A)")
		fmt.Fprintln(m.out, "5. No sorting")
		choice, ok := m.prompt("Choose a sort order: ")
		if !ok {
			return
		}
		key, recognized := cartSortChoices[choice]
		if !recognized {
			fmt.Fprintln(m.out, "Invalid choice. Please pick a number from 1 to 5.")
			continue
		}
		m.printCart(username, key)
		return
	}
}

func (m *Menu) printCart(username, sortKey string) {
	items, total, err := m.svc.Cart(username, sortKey)
	if err != nil {
		fmt.Fprintf(m.out, "Could not show cart: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "The cart is empty.")
		return
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 32))
	fmt.Fprintf(m.out, "%-20s %-10s\n", "Name", "Price")
	fmt.Fprintln(m.out, strings.Repeat("-", 32))
	for _, it := range items {
		fmt.Fprintf(m.out, "%-20s %-10.2f\n", it.Name, it.Price)
	}
	fmt.Fprintln(m.out, strings.Repeat("-", 32))
	fmt.Fprintf(m.out, "Total cost: %.2f\n", total)
}

func (m *Menu) checkout(username string) {
	m.printCart(username, "")
	answer, ok := m.prompt("Confirm purchase? (y/n): ")
	if !ok {
		return
	}
	confirm := strings.EqualFold(answer, "y")
	result, err := m.svc.Checkout(username, confirm)
	if err != nil {
		fmt.Fprintf(m.out, "Checkout failed: %v\n", err)
		return
	}
	if !result.Committed {
		fmt.Fprintln(m.out, "Purchase cancelled.")
		return
	}
	fmt.Fprintf(m.out, "Purchase complete! Receipt %s, total %.2f\n", result.ReceiptID, result.Total)
}

func (m *Menu) showHistory(username string) {
	history, err := m.svc.History(username)
	if err != nil {
		fmt.Fprintf(m.out, "Could not show history: %v\n", err)
		return
	}
	if len(history) == 0 {
		fmt.Fprintln(m.out, "No purchases yet.")
		return
	}
	fmt.Fprintln(m.out, "\nPurchase history:")
	for i, p := range history {
		fmt.Fprintf(m.out, "--- Purchase %d ---\n", i+1)
		fmt.Fprintf(m.out, "Name: %s\n", p.Name)
		fmt.Fprintf(m.out, "Price: %.2f\n", p.Price)
		if p.PurchaseDate != nil {
			fmt.Fprintf(m.out, "Purchased at: %s\n", p.PurchaseDate.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintln(m.out, strings.Repeat("-", 20))
	}
}
