package sources

type groupResolver struct {
	groups map[int64]int64
}

// NewGroupResolver creates a GroupResolver from group ids carried by
// subscription entries. Entries without group id stay unresolved.
func NewGroupResolver(subs []SubscriptionEntry) GroupResolver {
	res := groupResolver{groups: make(map[int64]int64, len(subs))}
	for _, v := range subs {
		if v.GroupID == nil {
			continue
		}
		res.groups[v.SubscriptionID] = *v.GroupID
	}
	return &res
}

// GroupID implements GroupResolver.
func (g *groupResolver) GroupID(subscriptionID int64) (int64, bool) {
	res, ok := g.groups[subscriptionID]
	return res, ok
}
