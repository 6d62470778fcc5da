package qadata

// CanMutate is the authorization predicate consulted by every edit and
// delete: the original author may always mutate their own content, and a
// privileged caller may too. Edits pass privileged=false (editing is
// author-only everywhere); deletes pass the requester's admin flag.
func CanMutate(author, requester string, privileged bool) bool {
	return author == requester || privileged
}
