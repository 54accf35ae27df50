package enum

// InvestmentCapacity indicates whether a lead can fund the franchise fee
type InvestmentCapacity string

const (
	InvestmentCapacityYes InvestmentCapacity = "yes"
	InvestmentCapacityNo  InvestmentCapacity = "no"
)

// IsValid checks if the investment capacity is a known value
func (c InvestmentCapacity) IsValid() bool {
	return c == InvestmentCapacityYes || c == InvestmentCapacityNo
}

// SourceChannel indicates how a lead found out about the franchise
type SourceChannel string

const (
	SourceChannelWebsite       SourceChannel = "website"
	SourceChannelReferral      SourceChannel = "referral"
	SourceChannelSocialMedia   SourceChannel = "social_media"
	SourceChannelEvent         SourceChannel = "event"
	SourceChannelAdvertisement SourceChannel = "advertisement"
	SourceChannelOther         SourceChannel = "other"
)

// IsValid checks if the source channel is a known value
func (c SourceChannel) IsValid() bool {
	switch c {
	case SourceChannelWebsite, SourceChannelReferral, SourceChannelSocialMedia,
		SourceChannelEvent, SourceChannelAdvertisement, SourceChannelOther:
		return true
	}
	return false
}
