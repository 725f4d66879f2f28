package constants

type EnquiryStatus string

const (
	EnquiryPending   EnquiryStatus = "pending"
	EnquiryContacted EnquiryStatus = "contacted"
	EnquiryClosed    EnquiryStatus = "closed"
)

// Valid reports whether s is one of the fixed enquiry statuses. Transitions
// between valid statuses are not restricted; admins may move a record back
// and forth to correct mistakes.
func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryPending, EnquiryContacted, EnquiryClosed:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationSelected ApplicationStatus = "selected"
	ApplicationDeclined ApplicationStatus = "declined"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationSelected, ApplicationDeclined:
		return true
	}
	return false
}

// Tier is one of the fixed pricing/service levels attached to a product.
type Tier string

const (
	TierBase     Tier = "base"
	TierPlus     Tier = "plus"
	TierPro      Tier = "pro"
	TierUltimate Tier = "ultimate"
)

func (t Tier) Valid() bool {
	switch t {
	case TierBase, TierPlus, TierPro, TierUltimate:
		return true
	}
	return false
}

type ProductCategory string

const (
	CategoryEcommerce ProductCategory = "ecommerce"
	CategoryBusiness  ProductCategory = "business"
	CategoryPortfolio ProductCategory = "portfolio"
	CategoryBlog      ProductCategory = "blog"
	CategoryLanding   ProductCategory = "landing"
	CategoryCustom    ProductCategory = "custom"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryEcommerce, CategoryBusiness, CategoryPortfolio,
		CategoryBlog, CategoryLanding, CategoryCustom:
		return true
	}
	return false
}
