// Package libreria talks to the librería backend's REST API and normalizes
// its response envelope into plain results and typed errors.
package libreria

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Backend is the surface of the API the dashboard consumes. It is
// implemented by *Client and faked in tests.
type Backend interface {
	ListAuthors(ctx context.Context) ([]Author, error)
	CreateAuthor(ctx context.Context, a Author) (Author, error)
	UpdateAuthor(ctx context.Context, a Author) error
	SetAuthorActive(ctx context.Context, id int64, active bool) error

	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c Category) (Category, error)
	UpdateCategory(ctx context.Context, c Category) error
	SetCategoryActive(ctx context.Context, id int64, active bool) error

	ListTopics(ctx context.Context) ([]Topic, error)
	CreateTopic(ctx context.Context, t Topic) (Topic, error)
	UpdateTopic(ctx context.Context, t Topic) error
	SetTopicActive(ctx context.Context, id int64, active bool) error

	ListCustomers(ctx context.Context, page, limit int, search string) ([]Customer, PageInfo, error)
	CreateCustomer(ctx context.Context, c Customer) (Customer, error)
	UpdateCustomer(ctx context.Context, c Customer) error
	SetCustomerActive(ctx context.Context, id int64, active bool) error

	ListUsers(ctx context.Context, page, limit int, search string) ([]User, PageInfo, error)
	CreateUser(ctx context.Context, u User) (User, error)
	UpdateUser(ctx context.Context, u User) error
	SetUserActive(ctx context.Context, id int64, active bool) error

	ListOrders(ctx context.Context, page, limit int, search string) ([]Order, PageInfo, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error

	ListMemberships(ctx context.Context) ([]Membership, error)
	SetMembershipActive(ctx context.Context, id int64, active bool) error
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// Client talks to the librería HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultAPIBase   = "127.0.0.1:4000"
	defaultUserAgent = "atril/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base address. An empty token
// disables the Authorization header.
func NewClient(apiBase, token string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		token:     token,
	}, nil
}

type authorListResponse struct {
	envelope
	Authors []Author `json:"author_list"`
}

type authorResponse struct {
	envelope
	Author Author `json:"author"`
}

// ListAuthors retrieves the full author collection; pagination for authors
// happens on the client.
func (c *Client) ListAuthors(ctx context.Context) ([]Author, error) {
	var payload authorListResponse
	if err := c.call(ctx, http.MethodGet, &url.URL{Path: "/api/authors"}, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Authors, nil
}

// CreateAuthor registers a new author and returns the stored record.
func (c *Client) CreateAuthor(ctx context.Context, a Author) (Author, error) {
	var payload authorResponse
	if err := c.call(ctx, http.MethodPost, &url.URL{Path: "/api/authors"}, a, &payload); err != nil {
		return Author{}, err
	}
	return payload.Author, nil
}

// UpdateAuthor overwrites an existing author's fields.
func (c *Client) UpdateAuthor(ctx context.Context, a Author) error {
	rel := &url.URL{Path: "/api/authors/" + strconv.FormatInt(a.ID, 10)}
	return c.call(ctx, http.MethodPut, rel, a, &authorResponse{})
}

// SetAuthorActive flips an author's active flag.
func (c *Client) SetAuthorActive(ctx context.Context, id int64, active bool) error {
	return c.setActive(ctx, "/api/authors", id, active)
}

type categoryListResponse struct {
	envelope
	Categories []Category `json:"category_list"`
}

type categoryResponse struct {
	envelope
	Category Category `json:"category"`
}

// ListCategories retrieves the full category collection.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var payload categoryListResponse
	if err := c.call(ctx, http.MethodGet, &url.URL{Path: "/api/categories"}, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Categories, nil
}

// CreateCategory registers a new category and returns the stored record.
func (c *Client) CreateCategory(ctx context.Context, cat Category) (Category, error) {
	var payload categoryResponse
	if err := c.call(ctx, http.MethodPost, &url.URL{Path: "/api/categories"}, cat, &payload); err != nil {
		return Category{}, err
	}
	return payload.Category, nil
}

// UpdateCategory overwrites an existing category's fields.
func (c *Client) UpdateCategory(ctx context.Context, cat Category) error {
	rel := &url.URL{Path: "/api/categories/" + strconv.FormatInt(cat.ID, 10)}
	return c.call(ctx, http.MethodPut, rel, cat, &categoryResponse{})
}

// SetCategoryActive flips a category's active flag.
func (c *Client) SetCategoryActive(ctx context.Context, id int64, active bool) error {
	return c.setActive(ctx, "/api/categories", id, active)
}

type topicListResponse struct {
	envelope
	Topics []Topic `json:"topic_list"`
}

type topicResponse struct {
	envelope
	Topic Topic `json:"topic"`
}

// ListTopics retrieves the full book-club topic collection.
func (c *Client) ListTopics(ctx context.Context) ([]Topic, error) {
	var payload topicListResponse
	if err := c.call(ctx, http.MethodGet, &url.URL{Path: "/api/topics"}, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Topics, nil
}

// CreateTopic registers a new topic and returns the stored record.
func (c *Client) CreateTopic(ctx context.Context, t Topic) (Topic, error) {
	var payload topicResponse
	if err := c.call(ctx, http.MethodPost, &url.URL{Path: "/api/topics"}, t, &payload); err != nil {
		return Topic{}, err
	}
	return payload.Topic, nil
}

// UpdateTopic overwrites an existing topic's fields.
func (c *Client) UpdateTopic(ctx context.Context, t Topic) error {
	rel := &url.URL{Path: "/api/topics/" + strconv.FormatInt(t.ID, 10)}
	return c.call(ctx, http.MethodPut, rel, t, &topicResponse{})
}

// SetTopicActive flips a topic's active flag.
func (c *Client) SetTopicActive(ctx context.Context, id int64, active bool) error {
	return c.setActive(ctx, "/api/topics", id, active)
}

type customerListResponse struct {
	envelope
	Customers  []Customer `json:"client_list"`
	TotalPages int        `json:"total_pages"`
	Total      int        `json:"totalClients"`
}

type customerResponse struct {
	envelope
	Customer Customer `json:"client"`
}

// ListCustomers retrieves one server-side page of clients. The search term
// must already be normalized by the caller.
func (c *Client) ListCustomers(ctx context.Context, page, limit int, search string) ([]Customer, PageInfo, error) {
	var payload customerListResponse
	rel := pagedURL("/api/clients", page, limit, search)
	if err := c.call(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, PageInfo{}, err
	}
	return payload.Customers, PageInfo{TotalPages: payload.TotalPages, TotalCount: payload.Total}, nil
}

// CreateCustomer registers a new client record.
func (c *Client) CreateCustomer(ctx context.Context, cust Customer) (Customer, error) {
	var payload customerResponse
	if err := c.call(ctx, http.MethodPost, &url.URL{Path: "/api/clients"}, cust, &payload); err != nil {
		return Customer{}, err
	}
	return payload.Customer, nil
}

// UpdateCustomer overwrites an existing client's fields.
func (c *Client) UpdateCustomer(ctx context.Context, cust Customer) error {
	rel := &url.URL{Path: "/api/clients/" + strconv.FormatInt(cust.ID, 10)}
	return c.call(ctx, http.MethodPut, rel, cust, &customerResponse{})
}

// SetCustomerActive flips a client's active flag.
func (c *Client) SetCustomerActive(ctx context.Context, id int64, active bool) error {
	return c.setActive(ctx, "/api/clients", id, active)
}

type userListResponse struct {
	envelope
	Users      []User `json:"user_list"`
	TotalPages int    `json:"total_pages"`
	Total      int    `json:"totalUsers"`
}

type userResponse struct {
	envelope
	User User `json:"user"`
}

// ListUsers retrieves one server-side page of dashboard users.
func (c *Client) ListUsers(ctx context.Context, page, limit int, search string) ([]User, PageInfo, error) {
	var payload userListResponse
	rel := pagedURL("/api/users", page, limit, search)
	if err := c.call(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, PageInfo{}, err
	}
	return payload.Users, PageInfo{TotalPages: payload.TotalPages, TotalCount: payload.Total}, nil
}

// CreateUser registers a new operator account.
func (c *Client) CreateUser(ctx context.Context, u User) (User, error) {
	var payload userResponse
	if err := c.call(ctx, http.MethodPost, &url.URL{Path: "/api/users"}, u, &payload); err != nil {
		return User{}, err
	}
	return payload.User, nil
}

// UpdateUser overwrites an existing user's fields.
func (c *Client) UpdateUser(ctx context.Context, u User) error {
	rel := &url.URL{Path: "/api/users/" + strconv.FormatInt(u.ID, 10)}
	return c.call(ctx, http.MethodPut, rel, u, &userResponse{})
}

// SetUserActive flips a user's active flag.
func (c *Client) SetUserActive(ctx context.Context, id int64, active bool) error {
	return c.setActive(ctx, "/api/users", id, active)
}

type orderListResponse struct {
	envelope
	Orders     []Order `json:"order_list"`
	TotalPages int     `json:"total_pages"`
	Total      int     `json:"totalOrders"`
}

// ListOrders retrieves one server-side page of orders.
func (c *Client) ListOrders(ctx context.Context, page, limit int, search string) ([]Order, PageInfo, error) {
	var payload orderListResponse
	rel := pagedURL("/api/orders", page, limit, search)
	if err := c.call(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, PageInfo{}, err
	}
	return payload.Orders, PageInfo{TotalPages: payload.TotalPages, TotalCount: payload.Total}, nil
}

// UpdateOrderStatus moves an order to a new fulfillment status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	rel := &url.URL{Path: "/api/orders/" + strconv.FormatInt(id, 10) + "/status"}
	body := map[string]string{"order_status": status}
	return c.call(ctx, http.MethodPut, rel, body, &orderListResponse{})
}

type membershipListResponse struct {
	envelope
	Memberships []Membership `json:"membership_list"`
}

// ListMemberships retrieves every membership plan with nested benefits and
// subscriptions.
func (c *Client) ListMemberships(ctx context.Context) ([]Membership, error) {
	var payload membershipListResponse
	if err := c.call(ctx, http.MethodGet, &url.URL{Path: "/api/memberships"}, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Memberships, nil
}

// SetMembershipActive flips a membership plan's active flag.
func (c *Client) SetMembershipActive(ctx context.Context, id int64, active bool) error {
	return c.setActive(ctx, "/api/memberships", id, active)
}

func (c *Client) setActive(ctx context.Context, base string, id int64, active bool) error {
	rel := &url.URL{Path: base + "/" + strconv.FormatInt(id, 10) + "/status"}
	body := map[string]bool{"status": active}
	return c.call(ctx, http.MethodPatch, rel, body, &struct{ envelope }{})
}

func pagedURL(path string, page, limit int, search string) *url.URL {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if term := strings.TrimSpace(search); term != "" {
		values.Set("search", term)
	}
	return &url.URL{Path: path, RawQuery: values.Encode()}
}

// call performs one round trip and folds the envelope into the error
// channel: nil on success (including empty-result sentinels), *DomainError
// when the backend said no, *TransportError for everything else.
func (c *Client) call(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return transportErr("encode request", err)
		}
		reader = bytes.NewReader(encoded)
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	}
	if err != nil {
		return transportErr("create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportErr("execute request", err)
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)

	if resp.StatusCode >= 400 {
		// Error bodies may still carry a structured message.
		var failure envelope
		if decodeErr := decoder.Decode(&failure); decodeErr == nil && strings.TrimSpace(failure.Message) != "" {
			return &DomainError{Message: failure.Message}
		}
		return transportErr(fmt.Sprintf("api %s returned status %d", rel.Path, resp.StatusCode), nil)
	}

	if dest == nil {
		return nil
	}
	if err := decoder.Decode(dest); err != nil {
		return transportErr("decode response", err)
	}

	if carrier, ok := dest.(interface{ env() envelope }); ok {
		e := carrier.env()
		if !e.ok() {
			msg := strings.TrimSpace(e.Message)
			if msg == "" {
				msg = genericFailure
			}
			return &DomainError{Message: msg}
		}
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
