package fields

// Donation-file column synonyms, in priority order. Gross/Total outrank the
// generic Amount so gross columns win when both appear.
var (
	AmountKeywords = []string{
		"Gross", "Total", "Value", "Price",
		"المبلغ", "القيمة", "الاجمالي", "الاجمالى",
		"قيمة التبرع", "مبلغ التبرع",
		"Amount",
	}

	DonorNameKeywords = []string{
		"Donor Name", "Name", "FullName",
		"الاسم", "اسم المتبرع", "المتبرع", "جهة التبرع", "العميل",
	}

	DonationDateKeywords = []string{
		"Order Created At", "Paid On", "Date", "CreatedAt",
		"التاريخ", "تاريخ التبرع", "تاريخ العملية",
	}

	TransactionIDKeywords = []string{
		"Transaction ID", "Txn ID", "Reference", "AuthCode", "Auth Code",
		"Order ID", "ID",
		"رقم العملية", "المرجع", "كود التفويض", "كود العملية",
		"رقم المرجع", "رمز المرجع",
	}

	CategoryKeywords = []string{
		"Order Items Summary", "Items", "Product", "Category", "Type", "Account",
		"البند", "نوع التبرع", "الحساب", "التصنيف",
	}

	InvoiceIDKeywords = []string{
		"Invoice Id", "Invoice ID", "Invoice#",
		"رقم الفاتورة", "رقم الفاتوره",
	}
)

// Bank-file column synonyms, in priority order. Net/ToPay outrank the
// generic Amount.
var (
	BankAmountKeywords = []string{
		"ToPay", "Net", "Credit",
		"الصافي", "مبلغ العملية", "مدين", "دائن",
		"Transaction Amount", "Amount", "المبلغ",
	}

	BankDateKeywords = []string{
		"Date", "TransactionDate", "Transaction Date",
		"التاريخ", "تاريخ العملية",
	}

	BankDescriptionKeywords = []string{
		"Description", "Details",
		"البيان", "تفاصيل", "الملاحظات",
	}

	BankTraceIDKeywords = []string{
		"AuthCode", "Auth Code", "RRN", "Trace ID", "Reference",
		"رقم المرجع", "المرجع", "رقم العملية", "كود التفويض", "رمز المرجع",
	}

	BankOrderRefKeywords = []string{
		"MPGS Order Reference", "Order Reference", "MPGS Reference",
		"مرجع MPGS", "مرجع الطلب",
	}
)
