package model

// Category classifies a donation by cause.
type Category string

const (
	CategoryZakat              Category = "Zakat"
	CategoryInsulinPumps       Category = "InsulinPumps"
	CategoryGeneral            Category = "General"
	CategoryDebtors            Category = "Debtors"
	CategoryHealth             Category = "Health"
	CategoryProductiveFamilies Category = "ProductiveFamilies"
	CategorySocial             Category = "Social"
	CategoryFurniture          Category = "Furniture"
	CategoryEducation          Category = "Education"
	CategoryHumanitarian       Category = "Humanitarian"
	CategoryOrphans            Category = "Orphans"

	// CategorySplit marks a donation allocated across several causes.
	CategorySplit Category = "Split"
)

// Legacy tags still present in older platform exports.
const (
	CategoryHealingAndHope Category = "HealingAndHope"
	CategoryAutismCenter   Category = "AutismCenter"
	CategoryOrphansDinar   Category = "OrphansDinar"
)

// ArabicLabels maps each category to its Arabic display label, used by
// downstream reporting.
var ArabicLabels = map[Category]string{
	CategoryZakat:              "زكاة المال",
	CategoryInsulinPumps:       "مضخات الأنسولين",
	CategoryGeneral:            "التبرع العام",
	CategoryDebtors:            "الغارمين",
	CategoryHealth:             "المشاريع الصحية",
	CategoryProductiveFamilies: "الأسر المنتجة",
	CategorySocial:             "المشاريع الاجتماعية",
	CategoryFurniture:          "الأثاث والأجهزة الكهربائية",
	CategoryEducation:          "المشاريع التعليمية",
	CategoryHumanitarian:       "المساعدات الإنسانية",
	CategoryOrphans:            "دينار اليتيم",
	CategorySplit:              "تبرع مقسم",
}
