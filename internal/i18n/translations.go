package i18n

// translations is the static key -> string table per supported language.
// No interpolation, no pluralization.
var translations = map[string]map[string]string{
	"en": {
		// Nav
		"dashboard":    "Dashboard",
		"transactions": "Transactions",
		"categories":   "Categories",
		"settings":     "Settings",
		// Dashboard
		"totalBalance":      "Total Balance",
		"totalIncome":       "Total Income",
		"totalExpenses":     "Total Expenses",
		"spendingAnalysis":  "Spending Analysis",
		"expenseByCategory": "Expense by Category",
		"recentTransactions": "Recent Transactions",
		"viewAll":           "View All",
		"addTransaction":    "Add Transaction",
		// Transactions
		"searchPlaceholder": "Search transactions...",
		"allTypes":          "All Types",
		"income":            "Income",
		"expense":           "Expense",
		"addNew":            "Add New",
		"date":              "Date",
		"category":          "Category",
		"description":       "Description",
		"amount":            "Amount",
		"type":              "Type",
		"noTransactions":    "No transactions found matching your criteria.",
		// Categories
		"manageCategories": "Manage Categories",
		"addCategory":      "Add Category",
		"total":            "Total:",
		// Settings
		"appearance": "Appearance",
		"currency":   "Currency",
		"language":   "Language",
		"light":      "Light",
		"dark":       "Dark",
		// Prompts
		"fillAll":         "Please fill all fields",
		"cancel":          "Cancel",
		"save":            "Save",
		"saveTransaction": "Save Transaction",
		"saveCategory":    "Save Category",
		"logout":          "Logout",
	},
	"ar": {
		"dashboard":    "لوحة القيادة",
		"transactions": "المعاملات",
		"categories":   "الفئات",
		"settings":     "الإعدادات",

		"totalBalance":      "الرصيد الإجمالي",
		"totalIncome":       "مجموع الدخل",
		"totalExpenses":     "مجموع المصاريف",
		"spendingAnalysis":  "تحليل الإنفاق",
		"expenseByCategory": "المصاريف حسب الفئة",
		"recentTransactions": "أحدث المعاملات",
		"viewAll":           "عرض الكل",
		"addTransaction":    "إضافة معاملة",

		"searchPlaceholder": "بحث في المعاملات...",
		"allTypes":          "كل الأنواع",
		"income":            "دخل",
		"expense":           "مصروف",
		"addNew":            "إضافة جديد",
		"date":              "التاريخ",
		"category":          "الفئة",
		"description":       "الوصف",
		"amount":            "المبلغ",
		"type":              "النوع",
		"noTransactions":    "لا توجد معاملات تطابق بحثك.",

		"manageCategories": "إدارة الفئات",
		"addCategory":      "إضافة فئة",
		"total":            "المجموع:",

		"appearance": "المظهر",
		"currency":   "العملة",
		"language":   "اللغة",
		"light":      "فاتح",
		"dark":       "داكن",

		"fillAll":         "يرجى ملء جميع الحقول",
		"cancel":          "إلغاء",
		"save":            "حفظ",
		"saveTransaction": "حفظ المعاملة",
		"saveCategory":    "حفظ الفئة",
		"logout":          "تسجيل خروج",
	},
	"fr": {
		"dashboard":    "Tableau de bord",
		"transactions": "Transactions",
		"categories":   "Catégories",
		"settings":     "Paramètres",

		"totalBalance":      "Solde Total",
		"totalIncome":       "Revenu Total",
		"totalExpenses":     "Dépenses Totales",
		"spendingAnalysis":  "Analyse des Dépenses",
		"expenseByCategory": "Dépenses par Catégorie",
		"recentTransactions": "Transactions Récentes",
		"viewAll":           "Voir Tout",
		"addTransaction":    "Ajouter Transaction",

		"searchPlaceholder": "Rechercher...",
		"allTypes":          "Tous types",
		"income":            "Revenu",
		"expense":           "Dépense",
		"addNew":            "Ajouter",
		"date":              "Date",
		"category":          "Catégorie",
		"description":       "Description",
		"amount":            "Montant",
		"type":              "Type",
		"noTransactions":    "Aucune transaction trouvée.",

		"manageCategories": "Gérer les Catégories",
		"addCategory":      "Ajouter Catégorie",
		"total":            "Total:",

		"appearance": "Apparence",
		"currency":   "Devise",
		"language":   "Langue",
		"light":      "Clair",
		"dark":       "Sombre",

		"fillAll":         "Veuillez remplir tous les champs",
		"cancel":          "Annuler",
		"save":            "Enregistrer",
		"saveTransaction": "Enregistrer Transaction",
		"saveCategory":    "Enregistrer Catégorie",
		"logout":          "Déconnexion",
	},
}
