// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Astrum Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/astrum-ledger/astrum-sdk/account"
	"github.com/astrum-ledger/astrum-sdk/fault"
	"github.com/astrum-ledger/astrum-sdk/xdr"
)

// federated consensus messages
//
// these are only serialized here, never voted on; a statement's
// pledges union nests ballots which themselves carry optional
// ballots, so this is the deepest wire structure in the protocol

// ScpBallot - a counter and the value being balloted
type ScpBallot struct {
	Counter uint32 `json:"counter"`
	Value   []byte `json:"value"`
}

// Pack - append the wire form of a ballot
func (b *ScpBallot) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if len(b.Value) > ValueMaxLength {
		return nil, fault.ErrValueTooLong
	}
	buffer = xdr.AppendUint32(buffer, b.Counter)
	return xdr.AppendVarBytes(buffer, b.Value), nil
}

func decodeScpBallot(d *xdr.Decoder) (ScpBallot, error) {
	b := ScpBallot{}
	var err error

	b.Counter, err = d.Uint32()
	if nil != err {
		return b, err
	}
	b.Value, err = d.VarBytes(ValueMaxLength)
	if nil != err {
		return b, err
	}
	return b, nil
}

// optional ballot: presence flag then the ballot if present
func packOptionalBallot(buffer xdr.Packed, b *ScpBallot) (xdr.Packed, error) {
	buffer = xdr.AppendFlag(buffer, nil != b)
	if nil == b {
		return buffer, nil
	}
	return b.Pack(buffer)
}

func decodeOptionalBallot(d *xdr.Decoder) (*ScpBallot, error) {
	present, err := d.Flag()
	if nil != err {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	b, err := decodeScpBallot(d)
	if nil != err {
		return nil, err
	}
	return &b, nil
}

// ScpNomination - candidate values a node has voted for or accepted
type ScpNomination struct {
	QuorumSetHash Hash     `json:"quorumSetHash"`
	Votes         [][]byte `json:"votes"`
	Accepted      [][]byte `json:"accepted"`
}

// Pack - append the wire form of a nomination
func (n *ScpNomination) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if len(n.Votes) > ScpValuesMaxCount || len(n.Accepted) > ScpValuesMaxCount {
		return nil, fault.ErrTooManyValues
	}
	for _, value := range n.Votes {
		if len(value) > ValueMaxLength {
			return nil, fault.ErrValueTooLong
		}
	}
	for _, value := range n.Accepted {
		if len(value) > ValueMaxLength {
			return nil, fault.ErrValueTooLong
		}
	}

	buffer = packHash(buffer, n.QuorumSetHash)
	buffer = xdr.AppendUint32(buffer, uint32(len(n.Votes)))
	for _, value := range n.Votes {
		buffer = xdr.AppendVarBytes(buffer, value)
	}
	buffer = xdr.AppendUint32(buffer, uint32(len(n.Accepted)))
	for _, value := range n.Accepted {
		buffer = xdr.AppendVarBytes(buffer, value)
	}
	return buffer, nil
}

func decodeScpNomination(d *xdr.Decoder) (ScpNomination, error) {
	n := ScpNomination{}
	var err error

	n.QuorumSetHash, err = decodeHash(d)
	if nil != err {
		return n, err
	}

	count, err := d.Count(ScpValuesMaxCount)
	if nil != err {
		return n, err
	}
	n.Votes = make([][]byte, count)
	for i := 0; i < count; i += 1 {
		n.Votes[i], err = d.VarBytes(ValueMaxLength)
		if nil != err {
			return n, err
		}
	}

	count, err = d.Count(ScpValuesMaxCount)
	if nil != err {
		return n, err
	}
	n.Accepted = make([][]byte, count)
	for i := 0; i < count; i += 1 {
		n.Accepted[i], err = d.VarBytes(ValueMaxLength)
		if nil != err {
			return n, err
		}
	}
	return n, nil
}

// ScpStatementType - discriminant for the pledges union
type ScpStatementType uint32

// all pledge variants
const (
	ScpStatementTypePrepare ScpStatementType = iota
	ScpStatementTypeConfirm
	ScpStatementTypeExternalize
	ScpStatementTypeNominate
)

// ScpPledges - what a node pledges at this point of the protocol
type ScpPledges interface {
	StatementType() ScpStatementType
	packPayload(buffer xdr.Packed) (xdr.Packed, error)
}

// ScpPrepare - prepare phase: ballot plus up to two optional earlier ballots
type ScpPrepare struct {
	QuorumSetHash Hash       `json:"quorumSetHash"`
	Ballot        ScpBallot  `json:"ballot"`
	Prepared      *ScpBallot `json:"prepared,omitempty"`
	PreparedPrime *ScpBallot `json:"preparedPrime,omitempty"`
	NC            uint32     `json:"nC"`
	NH            uint32     `json:"nH"`
}

// ScpConfirm - confirm phase
type ScpConfirm struct {
	Ballot        ScpBallot `json:"ballot"`
	NPrepared     uint32    `json:"nPrepared"`
	NCommit       uint32    `json:"nCommit"`
	NH            uint32    `json:"nH"`
	QuorumSetHash Hash      `json:"quorumSetHash"`
}

// ScpExternalize - externalize phase
type ScpExternalize struct {
	Commit              ScpBallot `json:"commit"`
	NH                  uint32    `json:"nH"`
	CommitQuorumSetHash Hash      `json:"commitQuorumSetHash"`
}

// ScpNominate - nomination phase
type ScpNominate struct {
	Nomination ScpNomination `json:"nomination"`
}

func (ScpPrepare) StatementType() ScpStatementType     { return ScpStatementTypePrepare }
func (ScpConfirm) StatementType() ScpStatementType     { return ScpStatementTypeConfirm }
func (ScpExternalize) StatementType() ScpStatementType { return ScpStatementTypeExternalize }
func (ScpNominate) StatementType() ScpStatementType    { return ScpStatementTypeNominate }

func (p ScpPrepare) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = packHash(buffer, p.QuorumSetHash)
	buffer, err := p.Ballot.Pack(buffer)
	if nil != err {
		return nil, err
	}
	buffer, err = packOptionalBallot(buffer, p.Prepared)
	if nil != err {
		return nil, err
	}
	buffer, err = packOptionalBallot(buffer, p.PreparedPrime)
	if nil != err {
		return nil, err
	}
	buffer = xdr.AppendUint32(buffer, p.NC)
	return xdr.AppendUint32(buffer, p.NH), nil
}

func (c ScpConfirm) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer, err := c.Ballot.Pack(buffer)
	if nil != err {
		return nil, err
	}
	buffer = xdr.AppendUint32(buffer, c.NPrepared)
	buffer = xdr.AppendUint32(buffer, c.NCommit)
	buffer = xdr.AppendUint32(buffer, c.NH)
	return packHash(buffer, c.QuorumSetHash), nil
}

func (e ScpExternalize) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	buffer, err := e.Commit.Pack(buffer)
	if nil != err {
		return nil, err
	}
	buffer = xdr.AppendUint32(buffer, e.NH)
	return packHash(buffer, e.CommitQuorumSetHash), nil
}

func (n ScpNominate) packPayload(buffer xdr.Packed) (xdr.Packed, error) {
	return n.Nomination.Pack(buffer)
}

// ScpStatement - one node's statement about one consensus slot
type ScpStatement struct {
	NodeID    *account.Account `json:"nodeID"`
	SlotIndex uint64           `json:"slotIndex"`
	Pledges   ScpPledges       `json:"pledges"`
}

// Pack - append the wire form of a statement
func (s *ScpStatement) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if nil == s.Pledges {
		return nil, fault.ErrInvalidDiscriminant
	}

	buffer, err := PackAccount(buffer, s.NodeID)
	if nil != err {
		return nil, err
	}
	buffer = xdr.AppendUint64(buffer, s.SlotIndex)
	buffer = xdr.AppendUint32(buffer, uint32(s.Pledges.StatementType()))
	return s.Pledges.packPayload(buffer)
}

func decodeScpStatement(d *xdr.Decoder, testnet bool) (*ScpStatement, error) {
	s := &ScpStatement{}
	var err error

	s.NodeID, err = decodeAccount(d, testnet)
	if nil != err {
		return nil, err
	}
	s.SlotIndex, err = d.Uint64()
	if nil != err {
		return nil, err
	}

	discriminant, err := d.Uint32()
	if nil != err {
		return nil, err
	}

	switch ScpStatementType(discriminant) {
	case ScpStatementTypePrepare:
		p := ScpPrepare{}
		p.QuorumSetHash, err = decodeHash(d)
		if nil != err {
			return nil, err
		}
		p.Ballot, err = decodeScpBallot(d)
		if nil != err {
			return nil, err
		}
		p.Prepared, err = decodeOptionalBallot(d)
		if nil != err {
			return nil, err
		}
		p.PreparedPrime, err = decodeOptionalBallot(d)
		if nil != err {
			return nil, err
		}
		p.NC, err = d.Uint32()
		if nil != err {
			return nil, err
		}
		p.NH, err = d.Uint32()
		if nil != err {
			return nil, err
		}
		s.Pledges = p
		return s, nil

	case ScpStatementTypeConfirm:
		c := ScpConfirm{}
		c.Ballot, err = decodeScpBallot(d)
		if nil != err {
			return nil, err
		}
		c.NPrepared, err = d.Uint32()
		if nil != err {
			return nil, err
		}
		c.NCommit, err = d.Uint32()
		if nil != err {
			return nil, err
		}
		c.NH, err = d.Uint32()
		if nil != err {
			return nil, err
		}
		c.QuorumSetHash, err = decodeHash(d)
		if nil != err {
			return nil, err
		}
		s.Pledges = c
		return s, nil

	case ScpStatementTypeExternalize:
		e := ScpExternalize{}
		e.Commit, err = decodeScpBallot(d)
		if nil != err {
			return nil, err
		}
		e.NH, err = d.Uint32()
		if nil != err {
			return nil, err
		}
		e.CommitQuorumSetHash, err = decodeHash(d)
		if nil != err {
			return nil, err
		}
		s.Pledges = e
		return s, nil

	case ScpStatementTypeNominate:
		n := ScpNominate{}
		n.Nomination, err = decodeScpNomination(d)
		if nil != err {
			return nil, err
		}
		s.Pledges = n
		return s, nil

	default:
		return nil, fault.ErrInvalidDiscriminant
	}
}

// DecodeScpStatement - decode a stand alone statement, requiring full consumption
func DecodeScpStatement(buffer xdr.Packed, testnet bool) (*ScpStatement, error) {
	d := xdr.NewDecoder(buffer)
	s, err := decodeScpStatement(d, testnet)
	if nil != err {
		return nil, err
	}
	if err := d.Done(); nil != err {
		return nil, err
	}
	return s, nil
}

// ScpEnvelope - a statement plus the issuing node's signature
type ScpEnvelope struct {
	Statement ScpStatement      `json:"statement"`
	Signature account.Signature `json:"signature"`
}

// Pack - append the wire form of a consensus envelope
func (env *ScpEnvelope) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	if len(env.Signature) > SignatureMaxLength {
		return nil, fault.ErrSignatureTooLong
	}
	buffer, err := env.Statement.Pack(buffer)
	if nil != err {
		return nil, err
	}
	return xdr.AppendVarBytes(buffer, env.Signature), nil
}

// DecodeScpEnvelope - decode a consensus envelope, requiring full consumption
func DecodeScpEnvelope(buffer xdr.Packed, testnet bool) (*ScpEnvelope, error) {
	d := xdr.NewDecoder(buffer)

	s, err := decodeScpStatement(d, testnet)
	if nil != err {
		return nil, err
	}
	signature, err := d.VarBytes(SignatureMaxLength)
	if nil != err {
		return nil, err
	}
	if err := d.Done(); nil != err {
		return nil, err
	}
	return &ScpEnvelope{
		Statement: *s,
		Signature: account.Signature(signature),
	}, nil
}

// DontHave - reply naming a requested item a peer cannot supply
type DontHave struct {
	Type    uint32 `json:"type"`
	ReqHash Hash   `json:"reqHash"`
}

// Pack - append the wire form of a dont-have reply
func (dh *DontHave) Pack(buffer xdr.Packed) (xdr.Packed, error) {
	buffer = xdr.AppendUint32(buffer, dh.Type)
	return packHash(buffer, dh.ReqHash), nil
}

// DecodeDontHave - decode a dont-have reply, requiring full consumption
func DecodeDontHave(buffer xdr.Packed) (*DontHave, error) {
	d := xdr.NewDecoder(buffer)
	dh := &DontHave{}
	var err error

	dh.Type, err = d.Uint32()
	if nil != err {
		return nil, err
	}
	dh.ReqHash, err = decodeHash(d)
	if nil != err {
		return nil, err
	}
	if err := d.Done(); nil != err {
		return nil, err
	}
	return dh, nil
}
